package store

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open connects to the database and migrates the schema. SQLite connections
// are limited to one so concurrent writers queue instead of failing with
// "database is locked".
func Open(driver, dsn string, logger *log.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite, "":
		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	cfg := &gorm.Config{TranslateError: true}
	if logger != nil {
		cfg.Logger = gormlogger.New(
			logger.StandardLog(log.StandardLogOptions{ForceLevel: log.DebugLevel}),
			gormlogger.Config{
				SlowThreshold:             500 * time.Millisecond,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		)
	} else {
		cfg.Logger = gormlogger.Discard
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	if driver != DriverPostgres {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&proteinRow{}, &fragmentRow{}, &motifRow{}, &userRow{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
