package exporters

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrlokans/libby2md/internal/entities"
	"github.com/mrlokans/libby2md/internal/utils"
)

// ConflictPolicy decides what happens when the output file already exists.
type ConflictPolicy string

const (
	ConflictReplace  ConflictPolicy = "replace"
	ConflictKeepBoth ConflictPolicy = "keep-both"
	ConflictCancel   ConflictPolicy = "cancel"
)

// ErrExportCancelled is returned when the target file exists and the
// conflict policy is cancel. The existing file is left untouched.
var ErrExportCancelled = errors.New("output file already exists")

// ParseConflictPolicy validates a policy name from config or flags.
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch ConflictPolicy(s) {
	case ConflictReplace, ConflictKeepBoth, ConflictCancel:
		return ConflictPolicy(s), nil
	default:
		return "", fmt.Errorf("unknown conflict policy %q (expected replace, keep-both or cancel)", s)
	}
}

// FileExporter renders a book record to markdown and writes it to
// {output dir}/{sanitized title}.md, applying the conflict policy when
// the file already exists.
type FileExporter struct {
	OutputDir  string
	OnConflict ConflictPolicy
}

func NewFileExporter(outputDir string, onConflict ConflictPolicy) *FileExporter {
	return &FileExporter{
		OutputDir:  outputDir,
		OnConflict: onConflict,
	}
}

func (e *FileExporter) Export(record *entities.BookRecord) (ExportResult, error) {
	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return ExportResult{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	name := utils.SanitizeFilename(record.Title)
	outputPath := filepath.Join(e.OutputDir, name+".md")

	if _, statErr := os.Stat(outputPath); statErr == nil {
		switch e.OnConflict {
		case ConflictReplace:
			// os.WriteFile truncates the existing file.
		case ConflictKeepBoth:
			freePath, err := nextFreePath(e.OutputDir, name)
			if err != nil {
				return ExportResult{}, err
			}
			outputPath = freePath
		default:
			return ExportResult{}, fmt.Errorf("%w: %s", ErrExportCancelled, outputPath)
		}
	}

	content := RenderMarkdown(record)
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return ExportResult{}, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	return ExportResult{
		OutputPath:        outputPath,
		TimelineEvents:    len(record.Timeline),
		CirculationEvents: len(record.Circulation),
	}, nil
}

// nextFreePath probes "{name} (1).md", "{name} (2).md", ... for the first
// path that does not exist yet.
func nextFreePath(dir, name string) (string, error) {
	for i := 1; i < 1000; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d).md", name, i))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free filename left for %q", name)
}

// Compile-time interface check
var _ RecordExporter = (*FileExporter)(nil)
