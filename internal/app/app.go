// Package app opens the configured database and assembles the service graph
// shared by the HTTP server and the admin CLI.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/core/services"
	"github.com/SscSPs/property_management_app/internal/platform/config"
	"github.com/SscSPs/property_management_app/internal/repositories/database/gormsql"
	"github.com/SscSPs/property_management_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/property_management_app/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// Database is an open connection for one of the two repository backends.
type Database struct {
	driver string
	sqlDB  *sql.DB
	pool   *pgxpool.Pool
	repos  portsrepo.RepositoryProvider
	logger *slog.Logger
}

// OpenDatabase connects using cfg.DBDriver and cfg.RepositoryBackend.
func OpenDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Database, error) {
	db := &Database{driver: cfg.DBDriver, logger: logger}

	switch cfg.RepositoryBackend {
	case config.BackendPgx:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, err
		}
		db.pool = pool
		db.sqlDB = stdlib.OpenDBFromPool(pool)
		db.repos = pgsql.NewRepositoryProvider(pool)
	case config.BackendGorm:
		dsn := cfg.DatabaseURL
		if cfg.DBDriver == config.DriverSQLite {
			dsn = cfg.SQLitePath
		}
		gdb, err := database.NewGormDB(cfg.DBDriver, dsn, logger)
		if err != nil {
			return nil, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access underlying sql.DB: %w", err)
		}
		db.sqlDB = sqlDB
		db.repos = gormsql.NewRepositoryProvider(gdb)
	default:
		return nil, fmt.Errorf("unsupported repository backend %q", cfg.RepositoryBackend)
	}
	return db, nil
}

// Repositories returns the repository set for this backend.
func (d *Database) Repositories() portsrepo.RepositoryProvider {
	return d.repos
}

// Migrator returns a migration runner over the same connection.
func (d *Database) Migrator() (*database.Migrator, error) {
	return database.NewMigrator(d.driver, d.sqlDB, d.logger)
}

// Close releases the connection.
func (d *Database) Close() {
	if err := d.sqlDB.Close(); err != nil {
		d.logger.Error("Error closing database connection", slog.String("error", err.Error()))
	}
	if d.pool != nil {
		d.pool.Close()
	}
}

// App is a ready-to-serve service graph.
type App struct {
	Config   *config.Config
	DB       *Database
	Services *portssvc.ServiceContainer
}

// Bootstrap opens the database, applies pending migrations when
// cfg.RunMigrations is set, and wires every service.
func Bootstrap(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := OpenDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		logger.Info("Running database migrations...")
		migrator, err := db.Migrator()
		if err != nil {
			db.Close()
			return nil, err
		}
		if err := migrator.Up(); err != nil {
			db.Close()
			return nil, err
		}
	}

	return &App{
		Config:   cfg,
		DB:       db,
		Services: services.NewServiceContainer(cfg, db.Repositories()),
	}, nil
}

// Close releases the database.
func (a *App) Close() {
	a.DB.Close()
}
