package store

import (
	"database/sql"
)

// Migrate brings the schema to the current version, guarded by
// PRAGMA user_version so re-running is a no-op.
func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}

	if v >= 1 {
		return tx.Commit()
	}

	// ---- Schema v1 ----

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS opportunities (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  university TEXT NOT NULL DEFAULT '',
  department TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  subjects TEXT NOT NULL DEFAULT '[]',
  requirements TEXT NOT NULL DEFAULT '[]',
  deadline TEXT NOT NULL DEFAULT '',
  posted_date TEXT NOT NULL DEFAULT '',
  fully_funded INTEGER NOT NULL DEFAULT 0,
  international INTEGER NOT NULL DEFAULT 0,
  supervisor TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS saved (
  opportunity_id TEXT PRIMARY KEY REFERENCES opportunities(id) ON DELETE CASCADE,
  saved_at TEXT NOT NULL
);
`); err != nil {
		return err
	}

	// single-row table; the UI has exactly one local profile
	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS profile (
  row_id INTEGER PRIMARY KEY CHECK (row_id = 1),
  user_id TEXT NOT NULL,
  interests TEXT NOT NULL DEFAULT '[]',
  sop TEXT NOT NULL DEFAULT '',
  updated_at TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_opportunities_posted_date
ON opportunities(posted_date);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}
