package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrlokans/libby2md/internal/config"
	"github.com/mrlokans/libby2md/internal/database"
	"github.com/mrlokans/libby2md/internal/entities"
	"github.com/mrlokans/libby2md/internal/exporters"
	"github.com/mrlokans/libby2md/internal/libby"
	"github.com/mrlokans/libby2md/internal/logging"
)

type LibbyImportCommand struct {
	FilePath     string
	OutputDir    string
	OnConflict   string
	DatabasePath string
	Force        bool
	NoHistory    bool
	Verbose      bool

	cfg *config.Config
}

func NewLibbyImportCommand() *LibbyImportCommand {
	return &LibbyImportCommand{cfg: config.NewConfig()}
}

func (cmd *LibbyImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to the Libby reading-data export JSON file (required)")
	fs.StringVar(&cmd.OutputDir, "out", cmd.cfg.Export.OutputDir, "Directory to write the markdown document to")
	fs.StringVar(&cmd.OnConflict, "on-conflict", cmd.cfg.Export.OnConflict, "What to do when the output file exists: replace, keep-both or cancel")
	fs.StringVar(&cmd.DatabasePath, "db", cmd.cfg.Database.Path, "Path to the import history database")
	fs.BoolVar(&cmd.Force, "force", false, "Import even when the export version is newer than supported")
	fs.BoolVar(&cmd.NoHistory, "no-history", !cmd.cfg.Database.HistoryEnabled, "Do not record this import in the history database")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Convert a Libby reading-data export into a markdown document.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s import -file ./libbytimeline-activities.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s import -file ./export.json -out ~/notes/books -on-conflict keep-both\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.FilePath == "" {
		fs.Usage()
		return fmt.Errorf("export file is required")
	}

	return nil
}

func (cmd *LibbyImportCommand) Run() error {
	level := cmd.cfg.Logging.Level
	if cmd.Verbose {
		level = "debug"
	}
	logger := logging.New(level)

	policy, err := exporters.ParseConflictPolicy(cmd.OnConflict)
	if err != nil {
		return err
	}

	if _, err := os.Stat(cmd.FilePath); os.IsNotExist(err) {
		return fmt.Errorf("export file does not exist: %s", cmd.FilePath)
	}

	file, err := os.Open(cmd.FilePath)
	if err != nil {
		return fmt.Errorf("failed to open export file: %w", err)
	}
	defer file.Close()

	export, err := libby.Decode(file)
	if err != nil {
		return err
	}
	logger.Debug().Int("version", export.Version).Str("file", cmd.FilePath).Msg("decoded export")

	if !libby.SupportsVersion(export.Version) {
		advisory := libby.VersionAdvisory{Version: export.Version, MaxSupported: libby.MaxSupportedVersion}
		if !cmd.Force {
			return fmt.Errorf("%s (pass -force to import anyway)", advisory)
		}
		logger.Warn().Int("version", export.Version).Msg(advisory.String())
	}

	record, err := libby.Normalize(export)
	if err != nil {
		return err
	}
	logger.Debug().
		Int("timeline_events", len(record.Timeline)).
		Int("circulation_events", len(record.Circulation)).
		Msg("normalized record")

	exporter := exporters.NewFileExporter(cmd.OutputDir, policy)
	result, err := exporter.Export(record)
	if errors.Is(err, exporters.ErrExportCancelled) {
		fmt.Printf("Skipped \"%s\": output file already exists (use -on-conflict replace or keep-both)\n", record.Title)
		return nil
	}
	if err != nil {
		return err
	}

	if !cmd.NoHistory {
		if err := cmd.recordHistory(export.Version, record, result); err != nil {
			// The document is already on disk, so a history failure is not fatal.
			logger.Warn().Err(err).Msg("failed to record import history")
		}
	}

	absPath, err := filepath.Abs(result.OutputPath)
	if err != nil {
		absPath = result.OutputPath
	}
	fmt.Printf("Imported \"%s\" by %s\n", record.Title, record.Author)
	fmt.Printf("  Timeline events:    %d\n", result.TimelineEvents)
	fmt.Printf("  Circulation events: %d\n", result.CirculationEvents)
	fmt.Printf("  Written to:         %s\n", absPath)

	return nil
}

func (cmd *LibbyImportCommand) recordHistory(version int, record *entities.BookRecord, result exporters.ExportResult) error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	return db.RecordImport(&entities.ImportRecord{
		Title:             record.Title,
		Author:            record.Author,
		ISBN:              record.ISBN,
		OutputPath:        result.OutputPath,
		FormatVersion:     version,
		TimelineEvents:    result.TimelineEvents,
		CirculationEvents: result.CirculationEvents,
	})
}
