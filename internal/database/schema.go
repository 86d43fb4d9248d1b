package database

import (
	"database/sql"
	"fmt"
)

// schemaStatements mirror the externally provisioned stop_search table, declared types included:
// the driver converts TIMESTAMP columns to time.Time, so readers must cast created_at back to TEXT.
// The server only reads it; ApplySchema exists for fixtures and local development databases.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS stop_search (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		datetime TEXT NOT NULL,
		type TEXT,
		age_range TEXT,
		gender TEXT,
		self_defined_ethnicity TEXT,
		officer_defined_ethnicity TEXT,
		legislation TEXT,
		object_of_search TEXT,
		outcome TEXT,
		outcome_linked_to_object_of_search BOOLEAN,
		removal_of_more_than_outer_clothing BOOLEAN,
		latitude REAL,
		longitude REAL,
		street_id INTEGER,
		street_name TEXT,
		involved_person BOOLEAN,
		operation BOOLEAN,
		operation_name TEXT,
		force TEXT NOT NULL,
		source_date TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		raw_data TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_datetime ON stop_search(datetime)`,
	`CREATE INDEX IF NOT EXISTS idx_force ON stop_search(force)`,
	`CREATE INDEX IF NOT EXISTS idx_location ON stop_search(latitude, longitude)`,
	`CREATE INDEX IF NOT EXISTS idx_outcome ON stop_search(outcome)`,
	`CREATE INDEX IF NOT EXISTS idx_source_date ON stop_search(source_date)`,
}

// ApplySchema creates the stop_search table and its indexes on a writable handle.
func ApplySchema(conn *sql.DB) error {
	for i, stmt := range schemaStatements {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement %d: %w", i, err)
		}
	}
	return nil
}
