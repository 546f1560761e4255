package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var schemaFiles embed.FS

// MigrateUp brings the tracker schema (activity_types, completions) up to
// date. It runs on every open; the statements are idempotent.
func MigrateUp(db *sql.DB) error {
	return runSchemaScripts(db, ".up.sql")
}

// MigrateDown drops the tracker schema, newest migration first.
func MigrateDown(db *sql.DB) error {
	return runSchemaScripts(db, ".down.sql")
}

func runSchemaScripts(db *sql.DB, suffix string) error {
	names, err := fs.Glob(schemaFiles, "migrations/*"+suffix)
	if err != nil {
		return fmt.Errorf("glob migrations: %w", err)
	}
	if suffix == ".down.sql" {
		sort.Sort(sort.Reverse(sort.StringSlice(names)))
	} else {
		sort.Strings(names)
	}
	for _, name := range names {
		script, err := schemaFiles.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.Exec(string(script)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}
