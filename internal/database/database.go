package database

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/libby2md/internal/entities"
)

// Database is the local import-history store.
type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&entities.ImportRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// RecordImport stores the outcome of a completed import.
func (d *Database) RecordImport(record *entities.ImportRecord) error {
	if record.ImportedAt.IsZero() {
		record.ImportedAt = time.Now().UTC()
	}
	if err := d.DB.Create(record).Error; err != nil {
		return fmt.Errorf("failed to record import: %w", err)
	}
	return nil
}

// ListImports returns past imports, newest first. A non-positive limit
// returns everything.
func (d *Database) ListImports(limit int) ([]entities.ImportRecord, error) {
	var records []entities.ImportRecord
	query := d.DB.Order("imported_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list imports: %w", err)
	}
	return records, nil
}
