package exporters

import (
	"strings"
	"testing"

	"github.com/mrlokans/libby2md/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() *entities.BookRecord {
	return &entities.BookRecord{
		Title:          "The Left Hand of Darkness",
		Author:         "Ursula K. Le Guin",
		Publisher:      "Ace Books",
		ISBN:           "9780441478125",
		Format:         "ebook",
		OverallPercent: 42,
		Timeline: []entities.TimelineEvent{
			// 2023-11-01 10:00 UTC
			{Kind: entities.EventKindBookmark, Timestamp: 1698832800000, Percent: 0.12, Chapter: "3"},
			// 2023-11-01 12:30 UTC
			{Kind: entities.EventKindHighlight, Timestamp: 1698841800000, Percent: 0.134, Quote: "Light is the left hand of darkness", ColorSymbol: "🟡"},
			// 2023-11-03 09:15 UTC
			{Kind: entities.EventKindHighlight, Timestamp: 1699002900000, Percent: 0.25, Quote: "The king was pregnant", ColorSymbol: "🟢"},
		},
		Circulation: []entities.CirculationEntry{
			// 2023-10-31 08:00 UTC
			{Timestamp: 1698739200000, Activity: "Borrowed", Details: "14 days", Library: "Brooklyn Public Library"},
		},
	}
}

func TestRenderMarkdown_FullDocument(t *testing.T) {
	expected := `# The Left Hand of Darkness
by Ursula K. Le Guin

## Book Details
- Publisher: Ace Books
- ISBN: 9780441478125
- Progress: 42%
- Format: ebook

## Reading Timeline

### November 1, 2023
- **Bookmark 🔖** Chapter 3 (12%)
- **Highlight** 🟡 "Light is the left hand of darkness" (13%)

### November 3, 2023
- **Highlight** 🟢 "The king was pregnant" (25%)

## Circulation History
1. October 31, 2023 - Borrowed (14 days)

*Borrowed from Brooklyn Public Library*
`

	assert.Equal(t, expected, RenderMarkdown(sampleRecord()))
}

func TestRenderMarkdown_Deterministic(t *testing.T) {
	first := RenderMarkdown(sampleRecord())
	second := RenderMarkdown(sampleRecord())

	assert.Equal(t, first, second)
}

func TestRenderMarkdown_GroupsEventsByDay(t *testing.T) {
	record := sampleRecord()
	output := RenderMarkdown(record)

	// Two distinct calendar days, so exactly two date headings.
	assert.Equal(t, 2, strings.Count(output, "### "))

	novemberFirst := strings.Index(output, "### November 1, 2023")
	novemberThird := strings.Index(output, "### November 3, 2023")
	require.NotEqual(t, -1, novemberFirst)
	require.NotEqual(t, -1, novemberThird)
	assert.Less(t, novemberFirst, novemberThird)
}

func TestRenderMarkdown_EmptyTimeline(t *testing.T) {
	record := sampleRecord()
	record.Timeline = nil

	output := RenderMarkdown(record)

	assert.NotContains(t, output, "### ")
	assert.Contains(t, output, "## Reading Timeline\n\n## Circulation History\n")
	assert.Contains(t, output, "*Borrowed from Brooklyn Public Library*")
}

func TestRenderMarkdown_CirculationNumberingAndDetails(t *testing.T) {
	record := sampleRecord()
	record.Circulation = []entities.CirculationEntry{
		{Timestamp: 1698739200000, Activity: "Borrowed", Details: "  14 days  ", Library: "Brooklyn Public Library"},
		{Timestamp: 1699002900000, Activity: "Returned", Library: "Brooklyn Public Library"},
	}

	output := RenderMarkdown(record)

	assert.Contains(t, output, "1. October 31, 2023 - Borrowed (14 days)\n")
	assert.Contains(t, output, "2. November 3, 2023 - Returned\n")
	// Attribution names the first entry's library.
	assert.True(t, strings.HasSuffix(output, "*Borrowed from Brooklyn Public Library*\n"))
}

func TestRenderMarkdown_PercentRounding(t *testing.T) {
	record := sampleRecord()
	record.OverallPercent = 41.5
	record.Timeline = []entities.TimelineEvent{
		{Kind: entities.EventKindBookmark, Timestamp: 1698832800000, Percent: 0.678, Chapter: "9"},
	}

	output := RenderMarkdown(record)

	assert.Contains(t, output, "- Progress: 42%")
	assert.Contains(t, output, "Chapter 9 (68%)")
}
