package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/adamspd/InterviewCoach/db"
	"github.com/adamspd/InterviewCoach/models"
	"github.com/adamspd/InterviewCoach/utils"
)

type ProblemHandlers struct {
	db *db.DB
}

func NewProblemHandlers(database *db.DB) *ProblemHandlers {
	return &ProblemHandlers{db: database}
}

func (ph *ProblemHandlers) HandleProblems(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		ph.listProblems(w, r)
	case http.MethodPost:
		apiKeyMiddleware(ph.createProblem)(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (ph *ProblemHandlers) HandleProblemByID(w http.ResponseWriter, r *http.Request) {
	id, _ := splitPath(r.URL.Path, "/problems/")
	if id == "" {
		http.Error(w, "Missing problem ID", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		ph.getProblem(w, id)
	case http.MethodDelete:
		apiKeyMiddleware(func(w http.ResponseWriter, r *http.Request) {
			ph.deleteProblem(w, id)
		})(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (ph *ProblemHandlers) listProblems(w http.ResponseWriter, r *http.Request) {
	problems, err := ph.db.GetAllProblems()
	if err != nil {
		utils.LogError("Failed to fetch problems: %v", err)
		http.Error(w, "Failed to fetch problems", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, problems)
}

func (ph *ProblemHandlers) getProblem(w http.ResponseWriter, id string) {
	problem, err := ph.db.GetProblemByID(id)
	if err != nil {
		utils.LogHTTP("Problem %s not found: %v", id, err)
		http.Error(w, "Problem not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, problem)
}

func (ph *ProblemHandlers) createProblem(w http.ResponseWriter, r *http.Request) {
	var req models.ProblemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogHTTP("Invalid JSON in problem request: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	problem, err := ph.db.CreateProblem(req)
	if err != nil {
		utils.LogError("Failed to create problem: %v", err)
		http.Error(w, "Failed to create problem", http.StatusInternalServerError)
		return
	}

	utils.LogHTTP("Created problem %s: %q", problem.ID, problem.Title)
	writeJSON(w, http.StatusCreated, problem)
}

func (ph *ProblemHandlers) deleteProblem(w http.ResponseWriter, id string) {
	if err := ph.db.DeleteProblem(id); err != nil {
		utils.LogHTTP("Failed to delete problem %s: %v", id, err)
		http.Error(w, "Problem not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
