package db

import (
	"database/sql"
	"fmt"
)

// SchemaSQL is the complete schema for a fresh statsdash database.
//
// This is the SINGLE SOURCE OF TRUTH for the stats table. Tests load it via
// GetSchemaSQL() and must not hardcode CREATE TABLE statements, so a column
// referenced by repository code but missing here fails with "no such column".
//
// The layout matches databases written by the earlier desktop dashboard; an
// existing stats table is adopted as-is.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS stats (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp DATETIME NOT NULL,
	score INTEGER NOT NULL DEFAULT 0,
	most_consecutive_flips INTEGER NOT NULL DEFAULT 0,
	objects_destroyed INTEGER NOT NULL DEFAULT 0,
	air_time REAL NOT NULL DEFAULT 0.0,
	tasks_completed INTEGER NOT NULL DEFAULT 0,
	trophies_collected INTEGER NOT NULL DEFAULT 0
);
`

// GetSchemaSQL returns the authoritative schema.
func GetSchemaSQL() string {
	return SchemaSQL
}

// InitSchema brings the database up to the latest schema version.
func InitSchema(db *sql.DB) error {
	if err := RunMigrations(db); err != nil {
		return err
	}
	return nil
}

// SchemaVersion returns the highest applied migration, 0 for an empty database.
func SchemaVersion(db *sql.DB) (int, error) {
	var tableCount int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return 0, fmt.Errorf("failed to inspect schema: %w", err)
	}
	if tableCount == 0 {
		return 0, nil
	}

	var version int
	if err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get current schema version: %w", err)
	}
	return version, nil
}

// LatestVersion is the version a fully migrated database reports.
func LatestVersion() int {
	return migrations[len(migrations)-1].Version
}
