package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/adamspd/InterviewCoach/db"
	"github.com/adamspd/InterviewCoach/interview"
	"github.com/adamspd/InterviewCoach/jobs"
	"github.com/adamspd/InterviewCoach/models"
	"github.com/adamspd/InterviewCoach/utils"
)

type InterviewHandlers struct {
	db         *db.DB
	registry   *interview.Registry
	engine     *interview.Engine
	jobManager *jobs.JobManager
}

func NewInterviewHandlers(database *db.DB, registry *interview.Registry, engine *interview.Engine, jobManager *jobs.JobManager) *InterviewHandlers {
	return &InterviewHandlers{
		db:         database,
		registry:   registry,
		engine:     engine,
		jobManager: jobManager,
	}
}

func (ih *InterviewHandlers) HandleInterviews(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		ih.initInterview(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (ih *InterviewHandlers) HandleInterviewByID(w http.ResponseWriter, r *http.Request) {
	id, action := splitPath(r.URL.Path, "/interviews/")
	if id == "" {
		http.Error(w, "Missing session ID", http.StatusBadRequest)
		return
	}

	session, exists := ih.registry.GetSession(id)
	if !exists {
		// An event for an unknown session is a logged no-op, never fatal.
		utils.LogSession("Event for unknown session %s ignored", id)
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		ih.getInterview(w, session)
	case action == "utterance" && r.Method == http.MethodPost:
		ih.ingestUtterance(w, r, session)
	case action == "code" && r.Method == http.MethodPost:
		ih.ingestCodeUpdate(w, r, session)
	case action == "end" && r.Method == http.MethodPost:
		ih.endInterview(w, r, session)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

func (ih *InterviewHandlers) initInterview(w http.ResponseWriter, r *http.Request) {
	var req models.InitInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogHTTP("Invalid JSON in init request: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	title := req.ProblemTitle
	description := req.ProblemDescription

	// Starting by problem id pulls the problem from the bank; inline
	// title+description works too, which is what the frontend editor sends.
	if req.ProblemID != "" {
		problem, err := ih.db.GetProblemByID(req.ProblemID)
		if err != nil {
			utils.LogHTTP("Init with unknown problem %s: %v", req.ProblemID, err)
			http.Error(w, "Problem not found", http.StatusNotFound)
			return
		}
		title = problem.Title
		description = problem.Description
	}

	if title == "" || description == "" {
		http.Error(w, "Missing problem title or description", http.StatusBadRequest)
		return
	}

	session := ih.registry.CreateSession(req.ProblemID, title, description)

	writeJSON(w, http.StatusCreated, models.InitInterviewResponse{
		SessionID:    session.ID,
		ProblemID:    session.ProblemID,
		ProblemTitle: session.ProblemTitle,
		CurrentStage: session.CurrentStage,
		StartedAt:    session.StartTime,
	})
}

func (ih *InterviewHandlers) getInterview(w http.ResponseWriter, session *models.Session) {
	session.Lock()
	snapshot := ih.engine.Snapshot(session)
	session.Unlock()

	writeJSON(w, http.StatusOK, snapshot)
}

func (ih *InterviewHandlers) ingestUtterance(w http.ResponseWriter, r *http.Request, session *models.Session) {
	var req models.UtteranceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogHTTP("Invalid JSON in utterance request: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	session.Lock()
	result := ih.engine.ProcessUtterance(r.Context(), session, req.Content, req.SilenceSeconds)
	response := models.AIResponse{
		Content:         result.Response,
		ShouldTTS:       result.Responded,
		HintsGiven:      session.HintsGiven,
		QuestionsAsked:  len(session.QuestionsAsked),
		ConfidenceLevel: session.ConfidenceLevel,
		CurrentStage:    session.CurrentStage,
		StageProgress:   session.Progress,
	}
	session.Unlock()

	writeJSON(w, http.StatusOK, response)
}

func (ih *InterviewHandlers) ingestCodeUpdate(w http.ResponseWriter, r *http.Request, session *models.Session) {
	var req models.CodeUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogHTTP("Invalid JSON in code update: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	language := req.Language
	if language == "" {
		language = "python"
	}

	session.Lock()
	facts := ih.engine.ProcessCodeUpdate(session, req.Content, language)
	response := models.CodeUpdateResponse{
		LineCount:    facts.LineCount,
		HasCode:      facts.HasCode,
		Issues:       facts.Issues,
		Suggestions:  facts.Suggestions,
		CurrentStage: session.CurrentStage,
	}
	session.Unlock()

	writeJSON(w, http.StatusOK, response)
}

func (ih *InterviewHandlers) endInterview(w http.ResponseWriter, r *http.Request, session *models.Session) {
	var req models.EndInterviewRequest
	// The body is optional; an empty or absent body just means no email copy.
	_ = json.NewDecoder(r.Body).Decode(&req)

	session.Lock()
	report := ih.engine.EndSession(session)
	wire := report.Percentages()
	sessionID := session.ID
	problemID := session.ProblemID
	problemTitle := session.ProblemTitle
	session.Unlock()

	ih.registry.DeleteSession(sessionID)

	if _, err := ih.db.SaveReport(sessionID, problemID, problemTitle, &wire); err != nil {
		// Archiving is best-effort; the candidate still gets their report.
		utils.LogError("Failed to archive report for session %s: %v", sessionID, err)
	}

	if req.Email != "" && ih.jobManager != nil {
		if err := ih.jobManager.QueueReportDelivery(req.Email, sessionID, problemTitle, &wire); err != nil {
			utils.LogError("Failed to queue report delivery for session %s: %v", sessionID, err)
		}
	}

	writeJSON(w, http.StatusOK, models.EndInterviewResponse{
		Content:  fmt.Sprintf("Interview complete! You earned a %s.", wire.OverallGrade),
		Feedback: &wire,
	})
}
