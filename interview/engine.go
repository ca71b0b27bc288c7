package interview

import (
	"context"
	"fmt"
	"strings"

	"github.com/adamspd/InterviewCoach/agent"
	"github.com/adamspd/InterviewCoach/models"
	"github.com/adamspd/InterviewCoach/utils"
)

// FallbackResponse finalizes a turn when the external responder fails or
// times out. The session must never be left mid-turn because the model was
// unreachable.
const FallbackResponse = "Let's keep going - can you walk me through your current thinking?"

// recentTurnLimit bounds how much conversation history is forwarded to the
// responder per turn.
const recentTurnLimit = 10

// Engine applies inbound events to sessions and coordinates the external
// response generator. It holds no per-session state of its own; callers hold
// the session lock for the duration of each call.
type Engine struct {
	responder   agent.Responder
	policy      Policy
	allowSilent bool
}

// NewEngine wires a responder with an intervention policy. allowSilent marks
// the silence-driven mode, where the responder may decline to speak via the
// listening sentinel.
func NewEngine(responder agent.Responder, policy Policy, allowSilent bool) *Engine {
	return &Engine{
		responder:   responder,
		policy:      policy,
		allowSilent: allowSilent,
	}
}

// UtteranceResult reports what one utterance turn did.
type UtteranceResult struct {
	Responded bool
	Response  string
	Decision  Decision
}

// ProcessUtterance drives one full turn: log the utterance, extract signals,
// advance the stage if ready, consult the intervention policy, and (when
// speaking) call the responder and classify its reply. A blank utterance is
// ignored and produces no state change, unless it reports a silence period in
// the silence-driven mode; push-to-talk only ever reacts to a complete
// utterance.
func (e *Engine) ProcessUtterance(ctx context.Context, s *models.Session, text string, silenceSeconds float64) *UtteranceResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" && (silenceSeconds <= 0 || !e.allowSilent) {
		return &UtteranceResult{}
	}

	now := timeNow()
	s.Touch()
	priorTurns := recentTurns(s)

	if trimmed == "" {
		// Silence event: only meaningful in the silence-driven mode.
		s.UserFocus = models.FocusSilent
	} else {
		s.AppendTurn("user", text)
		spokeAt := now
		s.LastSpokeAt = &spokeAt

		ExtractUserState(s, text)
		ExtractStageSignals(s, text)

		if ShouldAdvance(s) {
			Advance(s)
		}
	}

	decision := e.policy(s, silenceSeconds, now)
	if !decision.Speak {
		utils.LogAgent("Session %s: listening (%s)", shortID(s.ID), strings.Join(decision.Reasons, "; "))
		return &UtteranceResult{Decision: decision}
	}

	reply := e.respond(ctx, s, trimmed, priorTurns)
	if e.allowSilent && strings.Contains(strings.ToUpper(reply), agent.ListeningSentinel) {
		return &UtteranceResult{Decision: decision}
	}

	e.finalizeResponse(s, reply)
	return &UtteranceResult{
		Responded: true,
		Response:  reply,
		Decision:  decision,
	}
}

// ProcessCodeUpdate applies a code-change event and runs the auto-advance
// rule.
func (e *Engine) ProcessCodeUpdate(s *models.Session, code, language string) CodeFacts {
	s.Touch()
	facts := IngestCodeUpdate(s, code, language)
	if AutoAdvanceOnCode(s) {
		utils.LogSession("Session %s: coding activity moved interview to implementation", shortID(s.ID))
	}
	return facts
}

// EndSession marks the session finished and produces its feedback report.
// The caller removes the session from the registry afterwards.
func (e *Engine) EndSession(s *models.Session) *models.FeedbackReport {
	if s.EndedAt == nil {
		endedAt := timeNow()
		s.EndedAt = &endedAt
	}
	report := GenerateFeedback(s)
	utils.LogSession("Session %s: interview ended, grade %s (%.2f)", shortID(s.ID), report.OverallGrade, report.OverallScore)
	return report
}

// Snapshot builds the read-only view of a session for the transport layer.
func (e *Engine) Snapshot(s *models.Session) models.SessionSnapshot {
	return models.SessionSnapshot{
		SessionID:       s.ID,
		ProblemID:       s.ProblemID,
		ProblemTitle:    s.ProblemTitle,
		CurrentStage:    s.CurrentStage,
		StageProgress:   s.Progress,
		UserFocus:       s.UserFocus,
		ConfidenceLevel: s.ConfidenceLevel,
		HintsGiven:      s.HintsGiven,
		QuestionsAsked:  len(s.QuestionsAsked),
		CodeLines:       s.CodeLines,
		ElapsedSeconds:  timeNow().Sub(s.StartTime).Seconds(),
	}
}

// respond asks the external responder for the interviewer's reply. Failures
// are recovered locally: the turn still finalizes with the fallback response
// and never surfaces an error to the caller.
func (e *Engine) respond(ctx context.Context, s *models.Session, utterance string, priorTurns []agent.Turn) string {
	req := &agent.Request{
		ProblemTitle:       s.ProblemTitle,
		ProblemDescription: s.ProblemDescription,
		CurrentStage:       string(s.CurrentStage),
		StageSummary:       stageSummary(s),
		UserFocus:          string(s.UserFocus),
		ConfidenceLevel:    s.ConfidenceLevel,
		HintsGiven:         s.HintsGiven,
		QuestionsAsked:     len(s.QuestionsAsked),
		ElapsedSeconds:     timeNow().Sub(s.StartTime).Seconds(),
		Utterance:          utterance,
		RecentTurns:        priorTurns,
		AllowSilent:        e.allowSilent,
	}

	reply, err := e.responder.Respond(ctx, req)
	if err != nil {
		utils.LogAgent("Responder failed for session %s, using fallback: %v", shortID(s.ID), err)
		return FallbackResponse
	}
	return reply
}

// finalizeResponse records an outgoing response and classifies it: a question
// mark logs it as a question asked, hint vocabulary counts as a hint given.
func (e *Engine) finalizeResponse(s *models.Session, reply string) {
	now := timeNow()
	s.LastAIResponse = &now
	s.AppendTurn("assistant", reply)

	if strings.Contains(reply, "?") {
		s.QuestionsAsked = append(s.QuestionsAsked, reply)
	}
	if Matches(CategoryHint, reply) {
		s.HintsGiven++
	}
}

// stageSummary condenses the progress evidence relevant to the current stage
// into one line for the responder.
func stageSummary(s *models.Session) string {
	p := s.Progress
	switch s.CurrentStage {
	case models.StageClarification:
		return fmt.Sprintf("clarifying questions: %d, input/output understood: %t, constraints discussed: %t",
			p.ClarifyingQuestionsAsked, p.InputOutputUnderstood, p.ConstraintsDiscussed)
	case models.StageAlgorithmDesign:
		return fmt.Sprintf("brute force: %t, traced example: %t, complexity: %t, optimization: %t",
			p.BruteForceDiscussed, p.AlgorithmTraced, p.ComplexityAnalyzed, p.OptimizationDiscussed)
	case models.StageImplementation:
		return fmt.Sprintf("code started: %t, %d lines, %d structural issues flagged",
			p.CodeStarted, s.CodeLines, p.SyntaxIssueCount)
	case models.StageAnalysis:
		return fmt.Sprintf("edge cases: %t, runtime: %t, space: %t",
			p.EdgeCasesTested, p.RuntimeAnalyzed, p.SpaceAnalyzed)
	}
	return ""
}

func recentTurns(s *models.Session) []agent.Turn {
	start := 0
	if len(s.Conversation) > recentTurnLimit {
		start = len(s.Conversation) - recentTurnLimit
	}
	turns := make([]agent.Turn, 0, len(s.Conversation)-start)
	for _, t := range s.Conversation[start:] {
		turns = append(turns, agent.Turn{Role: t.Role, Content: t.Content})
	}
	return turns
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
