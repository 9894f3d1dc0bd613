package libby

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// Export is the raw JSON structure of a Libby reading-data export.
// Section fields are pointers so that a missing section is
// distinguishable from an empty one after decoding.
type Export struct {
	Version        int             `json:"version"`
	ReadingJourney *ReadingJourney `json:"readingJourney"`
	Bookmarks      []RawBookmark   `json:"bookmarks"`
	Highlights     []RawHighlight  `json:"highlights"`
	Circulation    *[]RawActivity  `json:"circulation"`
}

// ReadingJourney holds the book's descriptive metadata and overall
// progress as a fraction in [0, 1].
type ReadingJourney struct {
	Title     LabeledText `json:"title"`
	Author    string      `json:"author"`
	Publisher string      `json:"publisher"`
	ISBN      string      `json:"isbn"`
	Percent   float64     `json:"percent"`
	Cover     Cover       `json:"cover"`
}

// LabeledText wraps values the export nests under a "text" key.
type LabeledText struct {
	Text string `json:"text"`
}

type Cover struct {
	Format string `json:"format"`
}

type RawBookmark struct {
	Chapter   string  `json:"chapter"`
	Timestamp int64   `json:"timestamp"`
	Percent   float64 `json:"percent"`
}

type RawHighlight struct {
	Quote     string  `json:"quote"`
	Timestamp int64   `json:"timestamp"`
	Percent   float64 `json:"percent"`
	Chapter   string  `json:"chapter"`
	Color     string  `json:"color"`
}

// RawActivity is one loan lifecycle event (borrowed, renewed, returned).
type RawActivity struct {
	Timestamp int64       `json:"timestamp"`
	Activity  string      `json:"activity"`
	Details   string      `json:"details"`
	Library   LabeledText `json:"library"`
}

// Decode reads a full export document from r.
func Decode(r io.Reader) (*Export, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}
	return DecodeBytes(data)
}

// DecodeBytes unmarshals a full export document.
func DecodeBytes(data []byte) (*Export, error) {
	var export Export
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("failed to decode export: %w", err)
	}
	return &export, nil
}
