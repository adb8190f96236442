package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates the habit and completion tables.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS habits (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,

		// is_completed is nullable on purpose: records imported from
		// older data only carry a status string, and the engine's
		// precedence rule needs to see which representation was set.
		`CREATE TABLE IF NOT EXISTS completions (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			habit_id     TEXT NOT NULL REFERENCES habits(id),
			date_key     TEXT NOT NULL,
			completed_at TEXT,
			is_completed BOOLEAN,
			status       TEXT,
			progress     REAL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_completions_habit ON completions(habit_id)`,
		`CREATE INDEX IF NOT EXISTS idx_completions_date ON completions(habit_id, date_key)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
