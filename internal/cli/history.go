package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/libby2md/internal/config"
	"github.com/mrlokans/libby2md/internal/database"
)

type HistoryCommand struct {
	DatabasePath string
	Limit        int
}

func NewHistoryCommand() *HistoryCommand {
	return &HistoryCommand{}
}

func (cmd *HistoryCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.NewConfig().Database.Path, "Path to the import history database")
	fs.IntVar(&cmd.Limit, "limit", 20, "Maximum number of imports to show (0 shows all)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s history [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List past imports, newest first.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *HistoryCommand) Run() error {
	if _, err := os.Stat(cmd.DatabasePath); os.IsNotExist(err) {
		fmt.Println("No imports recorded yet.")
		return nil
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := db.ListImports(cmd.Limit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No imports recorded yet.")
		return nil
	}

	for i, record := range records {
		fmt.Printf("%d. \"%s\" by %s (%d timeline events, %d circulation events)\n",
			i+1, record.Title, record.Author, record.TimelineEvents, record.CirculationEvents)
		fmt.Printf("   imported %s to %s\n", record.ImportedAt.Format("2006-01-02 15:04"), record.OutputPath)
	}

	return nil
}
