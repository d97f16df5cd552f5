// Package storage persists store snapshots in a sqlite database.
//
// Every logical store is serialized wholesale into one row of the snapshots
// table, keyed by the store's name. Rows are overwritten on every mutation
// and read once at startup, there are no partial writes.
package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Snapshot is the full serialized contents of one store.
type Snapshot struct {
	Key       string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

// Storage wraps the database connection for snapshot reads and writes.
type Storage struct {
	db *gorm.DB
}

// Connect opens the sqlite database and migrates the snapshot schema.
func Connect(dsn string) (*Storage, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(Snapshot{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return &Storage{db: db}, nil
}

// Save overwrites the snapshot for key with data.
func (s *Storage) Save(key string, data []byte) error {
	snapshot := Snapshot{
		Key:  key,
		Data: data,
	}

	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&snapshot).Error
}

// Load reads the snapshot for key. It returns nil data without an error
// when no snapshot has been written yet.
func (s *Storage) Load(key string) ([]byte, error) {
	var snapshot Snapshot

	err := s.db.First(&snapshot, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return snapshot.Data, nil
}

// Close closes the underlying database connection.
func (s *Storage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
