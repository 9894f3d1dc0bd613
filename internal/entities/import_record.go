package entities

import "time"

// ImportRecord tracks one completed import for the local history database.
type ImportRecord struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Title             string    `gorm:"index;size:512" json:"title"`
	Author            string    `gorm:"size:256" json:"author"`
	ISBN              string    `gorm:"size:20" json:"isbn,omitempty"`
	OutputPath        string    `gorm:"size:1024" json:"output_path"`
	FormatVersion     int       `json:"format_version"`
	TimelineEvents    int       `json:"timeline_events"`
	CirculationEvents int       `json:"circulation_events"`
	ImportedAt        time.Time `json:"imported_at"`
}

func (ImportRecord) TableName() string {
	return "import_records"
}
