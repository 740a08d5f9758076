package database

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/SscSPs/property_management_app/migrations"
	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrator applies the embedded schema migrations to an open database.
type Migrator struct {
	m      *migrate.Migrate
	logger *slog.Logger
}

// NewMigrator prepares migrations for driver "postgres" or "sqlite" over db.
// The caller keeps ownership of db.
func NewMigrator(driver string, db *sql.DB, logger *slog.Logger) (*Migrator, error) {
	var (
		fsys       fs.FS
		dir        string
		dbDriver   database.Driver
		driverName string
		err        error
	)
	switch driver {
	case "postgres":
		fsys, dir, driverName = migrations.Postgres, "postgres", "postgres"
		dbDriver, err = postgres.WithInstance(db, &postgres.Config{})
	case "sqlite":
		fsys, dir, driverName = migrations.SQLite, "sqlite", "sqlite3"
		dbDriver, err = sqlite3.WithInstance(db, &sqlite3.Config{})
	default:
		return nil, fmt.Errorf("unsupported migration driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("could not create %s driver instance for migrations: %w", driver, err)
	}

	src, err := iofs.New(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("could not open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driverName, dbDriver)
	if err != nil {
		return nil, fmt.Errorf("could not create migrate instance: %w", err)
	}
	return &Migrator{m: m, logger: logger}, nil
}

// Up applies all pending migrations. Having nothing to apply is not an error.
func (mg *Migrator) Up() error {
	err := mg.m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		mg.logger.Info("No new migrations to apply.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	mg.logger.Info("Database migrations applied successfully.")
	return nil
}

// Down rolls back steps migrations, or all of them when steps <= 0.
func (mg *Migrator) Down(steps int) error {
	var err error
	if steps > 0 {
		err = mg.m.Steps(-steps)
	} else {
		err = mg.m.Down()
	}
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	return nil
}

// Version reports the current schema version and whether the last migration failed midway.
func (mg *Migrator) Version() (uint, bool, error) {
	v, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

// Force sets the schema version without running migrations, clearing the dirty flag.
func (mg *Migrator) Force(version int) error {
	return mg.m.Force(version)
}
