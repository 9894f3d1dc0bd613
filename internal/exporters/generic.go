package exporters

import "github.com/mrlokans/libby2md/internal/entities"

// RecordExporter persists a rendered book record.
type RecordExporter interface {
	Export(record *entities.BookRecord) (ExportResult, error)
}

// ExportResult contains the outcome of an export operation.
type ExportResult struct {
	OutputPath        string `json:"output_path"`
	TimelineEvents    int    `json:"timeline_events"`
	CirculationEvents int    `json:"circulation_events"`
}
