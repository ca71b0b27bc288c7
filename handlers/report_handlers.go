package handlers

import (
	"net/http"
	"strconv"

	"github.com/adamspd/InterviewCoach/db"
	"github.com/adamspd/InterviewCoach/utils"
)

type ReportHandlers struct {
	db *db.DB
}

func NewReportHandlers(database *db.DB) *ReportHandlers {
	return &ReportHandlers{db: database}
}

func (rh *ReportHandlers) HandleReports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	reports, err := rh.db.GetRecentReports(limit)
	if err != nil {
		utils.LogError("Failed to fetch reports: %v", err)
		http.Error(w, "Failed to fetch reports", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, reports)
}

func (rh *ReportHandlers) HandleReportByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	idStr, _ := splitPath(r.URL.Path, "/reports/")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.LogHTTP("Invalid report ID: %s", idStr)
		http.Error(w, "Invalid report ID", http.StatusBadRequest)
		return
	}

	report, err := rh.db.GetReportByID(id)
	if err != nil {
		utils.LogHTTP("Report %d not found: %v", id, err)
		http.Error(w, "Report not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
