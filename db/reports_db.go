package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adamspd/InterviewCoach/models"
	"github.com/adamspd/InterviewCoach/utils"
)

// ArchivedReport is a stored feedback report with its archive metadata.
type ArchivedReport struct {
	ID           int                   `json:"id"`
	SessionID    string                `json:"session_id"`
	ProblemID    string                `json:"problem_id"`
	ProblemTitle string                `json:"problem_title"`
	Report       models.FeedbackReport `json:"report"`
	CreatedAt    time.Time             `json:"created_at"`
}

// SaveReport archives a finished interview's feedback report. The full report
// is stored as JSON next to the headline columns used for listing.
func (db *DB) SaveReport(sessionID, problemID, problemTitle string, report *models.FeedbackReport) (int, error) {
	utils.LogDB("Archiving report for session %s: grade %s", sessionID, report.OverallGrade)

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal report: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO reports (session_id, problem_id, problem_title, overall_grade, overall_score,
			stages_completed, total_time_minutes, hints_used, difficulty_recommendation, report_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, sessionID, problemID, problemTitle, report.OverallGrade, report.OverallScore,
		report.StagesCompleted, report.TotalTimeMinutes, report.HintsUsed,
		report.DifficultyRecommendation, string(reportJSON))
	if err != nil {
		utils.LogError("SaveReport insert failed: %v", err)
		return 0, fmt.Errorf("failed to save report: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

func (db *DB) GetReportByID(id int) (*ArchivedReport, error) {
	utils.LogDB("Getting report %d", id)

	var archived ArchivedReport
	var reportJSON string
	err := db.QueryRow(`
		SELECT id, session_id, COALESCE(problem_id, ''), problem_title, report_json, created_at
		FROM reports
		WHERE id = ?
	`, id).Scan(&archived.ID, &archived.SessionID, &archived.ProblemID, &archived.ProblemTitle, &reportJSON, &archived.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("report not found: %d", id)
	}
	if err != nil {
		utils.LogError("GetReportByID query failed: %v", err)
		return nil, err
	}

	if err := json.Unmarshal([]byte(reportJSON), &archived.Report); err != nil {
		return nil, fmt.Errorf("failed to parse archived report %d: %w", id, err)
	}

	return &archived, nil
}

func (db *DB) GetRecentReports(limit int) ([]ArchivedReport, error) {
	utils.LogDB("Getting %d most recent reports", limit)

	rows, err := db.Query(`
		SELECT id, session_id, COALESCE(problem_id, ''), problem_title, report_json, created_at
		FROM reports
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		utils.LogError("GetRecentReports query failed: %v", err)
		return nil, err
	}
	defer rows.Close()

	var reports []ArchivedReport
	for rows.Next() {
		var archived ArchivedReport
		var reportJSON string
		if err := rows.Scan(&archived.ID, &archived.SessionID, &archived.ProblemID,
			&archived.ProblemTitle, &reportJSON, &archived.CreatedAt); err != nil {
			utils.LogError("Failed to scan report row: %v", err)
			return nil, err
		}
		if err := json.Unmarshal([]byte(reportJSON), &archived.Report); err != nil {
			utils.LogError("Failed to parse archived report %d: %v", archived.ID, err)
			continue
		}
		reports = append(reports, archived)
	}

	return reports, rows.Err()
}
