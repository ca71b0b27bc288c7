package models

import "time"

// Problem is one coding problem from the bank.
type Problem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Difficulty  string    `json:"difficulty"` // easy, medium, hard
	CreatedAt   time.Time `json:"created_at"`
}

// ProblemRequest for creating problems
type ProblemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
}
