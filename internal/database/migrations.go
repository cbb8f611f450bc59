package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations is the ordered list of schema migrations, applied at startup.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_trails",
		SQL: `
			CREATE TABLE IF NOT EXISTS trails (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				trail_name TEXT NOT NULL,
				state TEXT NOT NULL DEFAULT '',
				city TEXT NOT NULL DEFAULT '',
				country TEXT NOT NULL DEFAULT '',
				difficulty TEXT NOT NULL DEFAULT '',
				length_km REAL NOT NULL DEFAULT 0,
				best_season TEXT NOT NULL DEFAULT '',
				est_time REAL,
				number_of_reviews REAL,
				tags TEXT NOT NULL DEFAULT '',
				description TEXT NOT NULL DEFAULT '',
				latitude REAL,
				longitude REAL,
				current_temperature REAL NOT NULL DEFAULT 0,
				current_windspeed REAL NOT NULL DEFAULT 0,
				current_winddirection REAL NOT NULL DEFAULT 0,
				current_weather_code REAL
			);
			CREATE INDEX IF NOT EXISTS idx_trails_name ON trails(trail_name);
			CREATE INDEX IF NOT EXISTS idx_trails_state ON trails(state);
		`,
	},
	{
		Version: 2,
		Name:    "create_enrichment_tasks",
		SQL: `
			CREATE TABLE IF NOT EXISTS enrichment_tasks (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				status TEXT NOT NULL DEFAULT 'pending',
				total_trails INTEGER NOT NULL DEFAULT 0,
				processed_trails INTEGER NOT NULL DEFAULT 0,
				failed_trails INTEGER NOT NULL DEFAULT 0,
				start_time TIMESTAMP,
				end_time TIMESTAMP,
				error_message TEXT,
				created_by TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
		`,
	},
}

// Migrate applies all pending migrations to the given database
func Migrate(conn *sql.DB) error {
	if err := initMigrationsTable(conn); err != nil {
		return err
	}

	applied, err := appliedVersions(conn)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}

		if _, err := conn.Exec(m.SQL); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}

		if _, err := conn.Exec(
			"INSERT INTO migrations (version, name) VALUES (?, ?)",
			m.Version, m.Name,
		); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}

		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

func initMigrationsTable(conn *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := conn.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedVersions(conn *sql.DB) (map[int]bool, error) {
	rows, err := conn.Query("SELECT version FROM migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[v] = true
	}

	return applied, rows.Err()
}
