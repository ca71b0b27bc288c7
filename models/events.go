package models

import "time"

// Wire types for the interview event endpoints. Field names match what the
// frontend consumes.

// InitInterviewRequest starts a session, either from the problem bank or with
// an inline problem.
type InitInterviewRequest struct {
	ProblemID          string `json:"problem_id"`
	ProblemTitle       string `json:"problem_title"`
	ProblemDescription string `json:"problem_description"`
}

type InitInterviewResponse struct {
	SessionID    string         `json:"session_id"`
	ProblemID    string         `json:"problem_id"`
	ProblemTitle string         `json:"problem_title"`
	CurrentStage InterviewStage `json:"current_stage"`
	StartedAt    time.Time      `json:"started_at"`
}

// UtteranceRequest carries one complete transcription. SilenceSeconds is
// only meaningful in the silence-driven policy mode, where the client reports
// quiet periods with empty content.
type UtteranceRequest struct {
	Content        string  `json:"content"`
	SilenceSeconds float64 `json:"silence_seconds"`
}

// AIResponse is the payload sent back after every processed utterance. It is
// a read-only snapshot; consumers never mutate session state through it.
type AIResponse struct {
	Content         string         `json:"content"`
	ShouldTTS       bool           `json:"should_tts"`
	HintsGiven      int            `json:"hints_given"`
	QuestionsAsked  int            `json:"questions_asked"`
	ConfidenceLevel float64        `json:"confidence_level"`
	CurrentStage    InterviewStage `json:"current_stage"`
	StageProgress   StageProgress  `json:"stage_progress"`
}

type CodeUpdateRequest struct {
	Content  string `json:"content"`
	Language string `json:"language"`
}

type CodeUpdateResponse struct {
	LineCount    int            `json:"line_count"`
	HasCode      bool           `json:"has_code"`
	Issues       []string       `json:"issues"`
	Suggestions  []string       `json:"suggestions"`
	CurrentStage InterviewStage `json:"current_stage"`
}

// EndInterviewRequest optionally asks for the report to be emailed.
type EndInterviewRequest struct {
	Email string `json:"email"`
}

type EndInterviewResponse struct {
	Content  string          `json:"content"`
	Feedback *FeedbackReport `json:"feedback"`
}

// SessionSnapshot is the read-only view returned by GET /interviews/{id}.
type SessionSnapshot struct {
	SessionID       string         `json:"session_id"`
	ProblemID       string         `json:"problem_id"`
	ProblemTitle    string         `json:"problem_title"`
	CurrentStage    InterviewStage `json:"current_stage"`
	StageProgress   StageProgress  `json:"stage_progress"`
	UserFocus       UserFocus      `json:"user_focus"`
	ConfidenceLevel float64        `json:"confidence_level"`
	HintsGiven      int            `json:"hints_given"`
	QuestionsAsked  int            `json:"questions_asked"`
	CodeLines       int            `json:"code_lines"`
	ElapsedSeconds  float64        `json:"elapsed_seconds"`
}
