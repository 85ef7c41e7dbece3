package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"market-signals/config"
	"market-signals/logger"
	"market-signals/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// StoreError wraps any failure of the underlying storage engine.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return "store: " + e.Op
	}
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Kind names the error class reported to API callers.
func (e *StoreError) Kind() string { return "StoreError" }

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// Store owns the SQLite file holding signals and their lookup tables.
type Store struct {
	db  *gorm.DB
	log *logger.Logger

	mu    sync.Mutex
	ready bool
}

// Open creates the data directory if needed and connects to the database
// file. Tables are created by Initialize.
func Open(cfg config.DatabaseConfig, log *logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.Nop()
	}
	if dir := filepath.Dir(cfg.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, storeErr("create data directory", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{
		Logger: newGormLog(log, gormLogLevel(cfg.LogLevel), cfg.SlowQuery),
	})
	if err != nil {
		return nil, storeErr("open database", err)
	}

	log.Info("Database connected", "path", cfg.Path)
	return &Store{db: db, log: log}, nil
}

func gormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return storeErr("ping", err)
	}
	return storeErr("ping", sqlDB.PingContext(ctx))
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return storeErr("close", err)
	}
	return storeErr("close", sqlDB.Close())
}

// Initialize creates the tables if absent and seeds the fixed catalog when
// the signals table is empty. Repeated calls are no-ops.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return nil
	}

	// Tables are created inside the IMMEDIATE transaction so separate
	// handles on one file serialize on the write lock.
	var seeded int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(&models.Signal{}, &models.Platform{}, &models.Sector{}, &models.Metadata{}); err != nil {
			return storeErr("create tables", err)
		}
		var count int64
		if err := tx.Model(&models.Signal{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		n, err := seed(tx)
		seeded = n
		return err
	})
	if err != nil {
		var se *StoreError
		if errors.As(err, &se) {
			return err
		}
		return storeErr("seed", err)
	}

	if seeded > 0 {
		s.log.Info("Seeded signal catalog", "signals", seeded)
	}
	s.ready = true
	return nil
}
