package libby

import (
	"fmt"
	"sort"

	"github.com/mrlokans/libby2md/internal/entities"
)

// MaxSupportedVersion is the newest export format version this package
// understands. Newer exports may still normalize correctly, but the
// caller is expected to consult SupportsVersion and decide whether to
// proceed.
const MaxSupportedVersion = 1

// SchemaError reports a structurally invalid export. It is fatal to the
// current import; the input itself is malformed and there is nothing to
// retry.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return e.Reason
}

// VersionAdvisory is a non-fatal signal that an export was produced by a
// newer format version than this implementation was written against.
type VersionAdvisory struct {
	Version      int
	MaxSupported int
}

func (a VersionAdvisory) String() string {
	return fmt.Sprintf("export version %d is newer than supported version %d, the format may have changed",
		a.Version, a.MaxSupported)
}

// SupportsVersion reports whether the given export format version is one
// this implementation was written against.
func SupportsVersion(v int) bool {
	return v <= MaxSupportedVersion
}

// Normalize validates a raw export and reshapes it into the canonical
// book record: bookmarks and highlights are unified into one timeline
// sorted by timestamp, highlight colors are resolved to display symbols,
// and metadata is copied through.
func Normalize(export *Export) (*entities.BookRecord, error) {
	if export.ReadingJourney == nil || export.Circulation == nil {
		return nil, &SchemaError{Reason: "not a recognized export"}
	}

	circulation := *export.Circulation
	if len(circulation) == 0 {
		return nil, &SchemaError{Reason: "no circulation history"}
	}

	timeline := make([]entities.TimelineEvent, 0, len(export.Bookmarks)+len(export.Highlights))
	for _, b := range export.Bookmarks {
		timeline = append(timeline, entities.TimelineEvent{
			Kind:      entities.EventKindBookmark,
			Timestamp: b.Timestamp,
			Percent:   b.Percent,
			Chapter:   b.Chapter,
		})
	}
	for _, h := range export.Highlights {
		timeline = append(timeline, entities.TimelineEvent{
			Kind:        entities.EventKindHighlight,
			Timestamp:   h.Timestamp,
			Percent:     h.Percent,
			Chapter:     h.Chapter,
			Quote:       h.Quote,
			ColorSymbol: resolveColor(h.Color),
		})
	}

	// Bookmarks went in first, so the stable sort keeps a bookmark ahead
	// of a highlight sharing its timestamp.
	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].Timestamp < timeline[j].Timestamp
	})

	journey := export.ReadingJourney
	record := &entities.BookRecord{
		Title:          journey.Title.Text,
		Author:         journey.Author,
		Publisher:      journey.Publisher,
		ISBN:           journey.ISBN,
		Format:         journey.Cover.Format,
		OverallPercent: journey.Percent * 100,
		Timeline:       timeline,
		Circulation:    make([]entities.CirculationEntry, 0, len(circulation)),
	}

	for _, a := range circulation {
		record.Circulation = append(record.Circulation, entities.CirculationEntry{
			Timestamp: a.Timestamp,
			Activity:  a.Activity,
			Details:   a.Details,
			Library:   a.Library.Text,
		})
	}

	return record, nil
}
