package entities

import "time"

type EventKind string

const (
	EventKindBookmark  EventKind = "bookmark"
	EventKindHighlight EventKind = "highlight"
)

// TimelineEvent is the unified representation of a bookmark or a highlight
// in a book's reading timeline. Bookmarks carry only a chapter label;
// highlights additionally carry the quoted text and a display symbol
// resolved from the raw highlight color.
type TimelineEvent struct {
	Kind        EventKind `json:"kind"`
	Timestamp   int64     `json:"timestamp"` // epoch milliseconds
	Percent     float64   `json:"percent"`   // raw fraction in [0, 1]
	Chapter     string    `json:"chapter"`
	Quote       string    `json:"quote,omitempty"`
	ColorSymbol string    `json:"color_symbol,omitempty"`
}

// Time converts the millisecond timestamp to a UTC time.Time.
func (e TimelineEvent) Time() time.Time {
	return time.UnixMilli(e.Timestamp).UTC()
}

// CirculationEntry is one event in the loan lifecycle of a borrowed book
// (borrowed, renewed, returned, ...). Input order is preserved.
type CirculationEntry struct {
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
	Activity  string `json:"activity"`
	Details   string `json:"details,omitempty"`
	Library   string `json:"library"`
}

// Time converts the millisecond timestamp to a UTC time.Time.
func (c CirculationEntry) Time() time.Time {
	return time.UnixMilli(c.Timestamp).UTC()
}

// BookRecord is the canonical result of normalizing a raw reading-data
// export. It is built once per import and consumed by the renderer;
// nothing mutates it afterwards.
type BookRecord struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Publisher string `json:"publisher,omitempty"`
	ISBN      string `json:"isbn,omitempty"`
	Format    string `json:"format,omitempty"`

	// OverallPercent is already scaled to [0, 100] by the normalizer,
	// unlike per-event percents which stay raw fractions.
	OverallPercent float64 `json:"overall_percent"`

	// Timeline is sorted ascending by timestamp. Ties keep input order,
	// with bookmarks ahead of highlights.
	Timeline []TimelineEvent `json:"timeline"`

	// Circulation is never empty; the renderer reads the first entry's
	// library for the attribution line.
	Circulation []CirculationEntry `json:"circulation"`
}
