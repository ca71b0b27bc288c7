package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/adamspd/InterviewCoach/db"
	"github.com/adamspd/InterviewCoach/interview"
	"github.com/adamspd/InterviewCoach/jobs"
	"github.com/adamspd/InterviewCoach/utils"
)

// API wrapper to hold all handlers
type API struct {
	interviewHandlers *InterviewHandlers
	problemHandlers   *ProblemHandlers
	reportHandlers    *ReportHandlers
	registry          *interview.Registry
}

func NewAPI(database *db.DB, registry *interview.Registry, engine *interview.Engine, jobManager *jobs.JobManager) *API {
	return &API{
		interviewHandlers: NewInterviewHandlers(database, registry, engine, jobManager),
		problemHandlers:   NewProblemHandlers(database),
		reportHandlers:    NewReportHandlers(database),
		registry:          registry,
	}
}

func NewRouter(database *db.DB, registry *interview.Registry, engine *interview.Engine, jobManager *jobs.JobManager) http.Handler {
	api := NewAPI(database, registry, engine, jobManager)

	mux := http.NewServeMux()

	// Health check (no auth required)
	mux.HandleFunc("/health", api.healthCheck)

	// Interview session endpoints (anonymous, keyed by opaque session id)
	mux.HandleFunc("/interviews", loggingMiddleware(api.interviewHandlers.HandleInterviews))
	mux.HandleFunc("/interviews/", loggingMiddleware(api.interviewHandlers.HandleInterviewByID))

	// Problem bank: reads are open, writes need the admin api key
	mux.HandleFunc("/problems", loggingMiddleware(api.problemHandlers.HandleProblems))
	mux.HandleFunc("/problems/", loggingMiddleware(api.problemHandlers.HandleProblemByID))

	// Archived reports are admin-only
	mux.HandleFunc("/reports", loggingMiddleware(apiKeyMiddleware(api.reportHandlers.HandleReports)))
	mux.HandleFunc("/reports/", loggingMiddleware(apiKeyMiddleware(api.reportHandlers.HandleReportByID)))

	return corsMiddleware(mux)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (api *API) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"sessions": api.registry.Count(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		utils.LogError("Failed to encode response: %v", err)
	}
}

// splitPath peels "/prefix/{id}[/action]" into its id and optional action.
func splitPath(path, prefix string) (id, action string) {
	rest := strings.TrimPrefix(path, prefix)
	rest = strings.Trim(rest, "/")
	parts := strings.SplitN(rest, "/", 2)
	id = parts[0]
	if len(parts) == 2 {
		action = parts[1]
	}
	return id, action
}
