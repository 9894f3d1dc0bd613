package exporters

import (
	"fmt"
	"math"
	"strings"

	"github.com/mrlokans/libby2md/internal/entities"
)

const dateLayout = "January 2, 2006"

// RenderMarkdown serializes a normalized book record into its markdown
// document: title header, book details, the reading timeline grouped by
// calendar day, and the circulation history with an attribution footer.
// The output is deterministic for equal records.
func RenderMarkdown(record *entities.BookRecord) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "# %s\n", record.Title)
	fmt.Fprintf(&builder, "by %s\n\n", record.Author)

	builder.WriteString("## Book Details\n")
	fmt.Fprintf(&builder, "- Publisher: %s\n", record.Publisher)
	fmt.Fprintf(&builder, "- ISBN: %s\n", record.ISBN)
	fmt.Fprintf(&builder, "- Progress: %d%%\n", roundPercent(record.OverallPercent))
	fmt.Fprintf(&builder, "- Format: %s\n\n", record.Format)

	builder.WriteString("## Reading Timeline\n\n")

	// The timeline is pre-sorted, so emitting a heading whenever the day
	// changes yields date groups in chronological order.
	currentDate := ""
	for _, event := range record.Timeline {
		date := event.Time().Format(dateLayout)
		if date != currentDate {
			if currentDate != "" {
				builder.WriteString("\n")
			}
			fmt.Fprintf(&builder, "### %s\n", date)
			currentDate = date
		}

		switch event.Kind {
		case entities.EventKindBookmark:
			fmt.Fprintf(&builder, "- **Bookmark 🔖** Chapter %s (%d%%)\n",
				event.Chapter, roundPercent(event.Percent*100))
		case entities.EventKindHighlight:
			fmt.Fprintf(&builder, "- **Highlight** %s \"%s\" (%d%%)\n",
				event.ColorSymbol, event.Quote, roundPercent(event.Percent*100))
		}
	}
	if len(record.Timeline) > 0 {
		builder.WriteString("\n")
	}

	builder.WriteString("## Circulation History\n")
	for i, entry := range record.Circulation {
		fmt.Fprintf(&builder, "%d. %s - %s", i+1, entry.Time().Format(dateLayout), entry.Activity)
		if detail := strings.TrimSpace(entry.Details); detail != "" {
			fmt.Fprintf(&builder, " (%s)", detail)
		}
		builder.WriteString("\n")
	}

	fmt.Fprintf(&builder, "\n*Borrowed from %s*\n", record.Circulation[0].Library)

	return builder.String()
}

// Per-event percents arrive as raw [0, 1] fractions and are scaled here,
// while BookRecord.OverallPercent is already scaled by the normalizer.
func roundPercent(percent float64) int {
	return int(math.Round(percent))
}
