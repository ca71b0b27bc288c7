package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/adamspd/InterviewCoach/models"
	"github.com/adamspd/InterviewCoach/utils"
)

func (db *DB) GetAllProblems() ([]models.Problem, error) {
	utils.LogDB("Getting all problems")

	rows, err := db.Query(`
		SELECT id, title, description, difficulty, created_at
		FROM problems
		ORDER BY created_at DESC
	`)
	if err != nil {
		utils.LogError("GetAllProblems query failed: %v", err)
		return nil, err
	}
	defer rows.Close()

	var problems []models.Problem
	for rows.Next() {
		var p models.Problem
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Difficulty, &p.CreatedAt); err != nil {
			utils.LogError("Failed to scan problem row: %v", err)
			return nil, err
		}
		problems = append(problems, p)
	}

	return problems, rows.Err()
}

func (db *DB) GetProblemByID(id string) (*models.Problem, error) {
	utils.LogDB("Getting problem %s", id)

	var p models.Problem
	err := db.QueryRow(`
		SELECT id, title, description, difficulty, created_at
		FROM problems
		WHERE id = ?
	`, id).Scan(&p.ID, &p.Title, &p.Description, &p.Difficulty, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("problem not found: %s", id)
	}
	if err != nil {
		utils.LogError("GetProblemByID query failed: %v", err)
		return nil, err
	}

	return &p, nil
}

func (db *DB) CreateProblem(req models.ProblemRequest) (*models.Problem, error) {
	id := utils.GenerateSessionID()[:12]
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}

	utils.LogDB("Creating problem %q (%s)", req.Title, difficulty)

	_, err := db.Exec(`
		INSERT INTO problems (id, title, description, difficulty)
		VALUES (?, ?, ?, ?)
	`, id, req.Title, req.Description, difficulty)
	if err != nil {
		utils.LogError("CreateProblem insert failed: %v", err)
		return nil, fmt.Errorf("failed to create problem: %w", err)
	}

	return &models.Problem{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  difficulty,
		CreatedAt:   time.Now(),
	}, nil
}

func (db *DB) DeleteProblem(id string) error {
	utils.LogDB("Deleting problem %s", id)

	result, err := db.Exec("DELETE FROM problems WHERE id = ?", id)
	if err != nil {
		utils.LogError("DeleteProblem failed: %v", err)
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("problem not found: %s", id)
	}
	return nil
}
