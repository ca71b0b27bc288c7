package db

import (
	"database/sql"
	"fmt"

	"github.com/adamspd/InterviewCoach/utils"
	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func InitDB(dbPath string) (*DB, error) {
	utils.LogStartup("Initializing database at: %s", dbPath)

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		utils.LogError("Failed to open database: %v", err)
		return nil, err
	}

	if err := db.Ping(); err != nil {
		utils.LogError("Failed to ping database: %v", err)
		return nil, err
	}

	utils.LogStartup("Database connection established")

	if err := createTables(db); err != nil {
		utils.LogError("Failed to create tables: %v", err)
		return nil, err
	}

	utils.LogStartup("Database tables initialized successfully")
	return &DB{db}, nil
}

func createTables(db *sql.DB) error {
	queries := []string{
		// Problem bank
		`CREATE TABLE IF NOT EXISTS problems (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			difficulty TEXT NOT NULL DEFAULT 'medium' CHECK (difficulty IN ('easy', 'medium', 'hard')),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Archived feedback reports, one per finished interview
		`CREATE TABLE IF NOT EXISTS reports (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			problem_id TEXT,
			problem_title TEXT NOT NULL,
			overall_grade TEXT NOT NULL,
			overall_score REAL NOT NULL,
			stages_completed INTEGER NOT NULL,
			total_time_minutes REAL NOT NULL,
			hints_used INTEGER NOT NULL,
			difficulty_recommendation TEXT NOT NULL,
			report_json TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for i, query := range queries {
		utils.LogDB("Creating table %d/%d", i+1, len(queries))
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_problems_difficulty ON problems(difficulty)",
		"CREATE INDEX IF NOT EXISTS idx_reports_session_id ON reports(session_id)",
		"CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports(created_at)",
	}

	for _, index := range indexes {
		if _, err := db.Exec(index); err != nil {
			utils.LogDB("Failed to create index (non-fatal): %v", err)
		}
	}

	return nil
}
