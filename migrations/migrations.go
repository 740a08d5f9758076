// Package migrations embeds the versioned schema for every supported database driver.
package migrations

import "embed"

// Postgres holds the migrations applied when DB_DRIVER=postgres.
//
//go:embed postgres/*.sql
var Postgres embed.FS

// SQLite holds the migrations applied when DB_DRIVER=sqlite.
//
//go:embed sqlite/*.sql
var SQLite embed.FS
