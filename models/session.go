package models

import (
	"sync"
	"time"
)

// InterviewStage is one of the four sequential phases of an interview.
type InterviewStage string

const (
	StageClarification   InterviewStage = "clarification"
	StageAlgorithmDesign InterviewStage = "algorithm_design"
	StageImplementation  InterviewStage = "implementation"
	StageAnalysis        InterviewStage = "analysis"
)

// StageOrder is the fixed forward-only progression. Sessions never skip or
// regress.
var StageOrder = []InterviewStage{
	StageClarification,
	StageAlgorithmDesign,
	StageImplementation,
	StageAnalysis,
}

// StageIndex returns the position of a stage in the progression, or -1.
func StageIndex(stage InterviewStage) int {
	for i, s := range StageOrder {
		if s == stage {
			return i
		}
	}
	return -1
}

// UserFocus describes what the candidate currently appears to be doing.
type UserFocus string

const (
	FocusThinking   UserFocus = "thinking"
	FocusExplaining UserFocus = "explaining"
	FocusCoding     UserFocus = "coding"
	FocusStuck      UserFocus = "stuck"
	FocusSilent     UserFocus = "silent"
)

// StageProgress accumulates evidence across the interview. Counters only ever
// increase; flags only ever flip to true.
type StageProgress struct {
	// Clarification
	ClarifyingQuestionsAsked int  `json:"clarifying_questions_asked"`
	InputOutputUnderstood    bool `json:"input_output_understood"`
	ConstraintsDiscussed     bool `json:"constraints_discussed"`

	// Algorithm design
	ApproachExplained     bool `json:"approach_explained"`
	BruteForceDiscussed   bool `json:"brute_force_discussed"`
	OptimizationDiscussed bool `json:"optimization_discussed"`
	AlgorithmTraced       bool `json:"algorithm_traced"`
	ComplexityAnalyzed    bool `json:"complexity_analyzed"`
	TradeoffsDiscussed    bool `json:"tradeoffs_discussed"`

	// Implementation
	CodeStarted      bool `json:"code_started"`
	CodeComplete     bool `json:"code_complete"`
	SyntaxIssueCount int  `json:"syntax_issue_count"`

	// Analysis
	EdgeCasesTested bool `json:"edge_cases_tested"`
	RuntimeAnalyzed bool `json:"runtime_analyzed"`
	SpaceAnalyzed   bool `json:"space_analyzed"`
}

// Turn is one entry in the conversation log.
type Turn struct {
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session holds all state for one interview attempt. It is owned by the
// session registry and mutated only while its lock is held; inbound events
// for a session are applied strictly in arrival order.
type Session struct {
	mu sync.Mutex

	ID                 string
	ProblemID          string
	ProblemTitle       string
	ProblemDescription string

	CurrentStage   InterviewStage
	Progress       StageProgress
	StageStartTime time.Time

	UserFocus       UserFocus
	ConfidenceLevel float64 // clamped to [0.2, 1.0]

	HintsGiven     int
	QuestionsAsked []string
	Conversation   []Turn

	Code             string
	CodeLanguage     string
	HasCode          bool
	CodeLines        int
	LastAnalyzedCode string

	StartTime      time.Time
	LastSpokeAt    *time.Time
	LastAIResponse *time.Time
	LastActivity   time.Time
	EndedAt        *time.Time
}

// NewSession creates a fresh session at the clarification stage.
func NewSession(id, problemID, title, description string) *Session {
	now := time.Now()
	return &Session{
		ID:                 id,
		ProblemID:          problemID,
		ProblemTitle:       title,
		ProblemDescription: description,
		CurrentStage:       StageClarification,
		StageStartTime:     now,
		StartTime:          now,
		LastActivity:       now,
		UserFocus:          FocusThinking,
		ConfidenceLevel:    0.5,
	}
}

// Lock acquires the session's serialization point. It is held for the whole
// turn, including the external responder call, so a late code update can
// never interleave with grading of stale progress.
func (s *Session) Lock() { s.mu.Lock() }

func (s *Session) Unlock() { s.mu.Unlock() }

// AppendTurn adds an entry to the append-only conversation log.
func (s *Session) AppendTurn(role, content string) {
	s.Conversation = append(s.Conversation, Turn{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
}

// Touch records activity for idle-session cleanup.
func (s *Session) Touch() {
	s.LastActivity = time.Now()
}
