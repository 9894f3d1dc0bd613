package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		Export
		Database
		Logging
	}

	Export struct {
		OutputDir  string
		OnConflict string // replace, keep-both or cancel
	}
	Database struct {
		Path           string
		HistoryEnabled bool
	}
	Logging struct {
		Level string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("on_conflict", "cancel")
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("history_enabled", true)
	v.SetDefault("log_level", "info")

	return &Config{
		Export: Export{
			OutputDir:  v.GetString("OUTPUT_DIR"),
			OnConflict: v.GetString("ON_CONFLICT"),
		},
		Database: Database{
			Path:           v.GetString("DATABASE_PATH"),
			HistoryEnabled: v.GetBool("HISTORY_ENABLED"),
		},
		Logging: Logging{
			Level: v.GetString("LOG_LEVEL"),
		},
	}
}
