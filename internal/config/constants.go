package config

const (
	// DefaultDatabasePath is the default path for the import history database
	DefaultDatabasePath = "./libby2md.db"

	// DefaultOutputDir is where rendered markdown documents land unless overridden
	DefaultOutputDir = "./exports"
)
