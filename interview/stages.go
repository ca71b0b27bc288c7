package interview

import (
	"fmt"

	"github.com/adamspd/InterviewCoach/models"
	"github.com/adamspd/InterviewCoach/utils"
)

// ShouldAdvance reports whether the current stage's readiness predicate
// holds. For the analysis stage this marks the interview content-complete;
// the session is never force-closed here, ending it is the client's call.
func ShouldAdvance(s *models.Session) bool {
	p := s.Progress
	switch s.CurrentStage {
	case models.StageClarification:
		return p.ClarifyingQuestionsAsked >= 2 && p.InputOutputUnderstood
	case models.StageAlgorithmDesign:
		return p.AlgorithmTraced && (p.BruteForceDiscussed || p.OptimizationDiscussed)
	case models.StageImplementation:
		return p.CodeStarted && s.CodeLines > 5
	case models.StageAnalysis:
		return p.EdgeCasesTested && p.RuntimeAnalyzed
	}
	return false
}

// Advance moves the session to the next stage when the current stage is
// ready. It never skips, never regresses, and from the final stage it is a
// no-op. The returned string describes what happened either way.
func Advance(s *models.Session) string {
	if s.CurrentStage == models.StageAnalysis {
		return "already in final stage"
	}
	if !ShouldAdvance(s) {
		return fmt.Sprintf("not ready to leave %s", s.CurrentStage)
	}

	next := models.StageOrder[models.StageIndex(s.CurrentStage)+1]
	utils.LogStage("Session %s: %s -> %s", s.ID, s.CurrentStage, next)
	s.CurrentStage = next
	s.StageStartTime = timeNow()
	return fmt.Sprintf("advanced to %s", next)
}

// AutoAdvanceOnCode handles the one shortcut in the protocol: a code update
// arriving during algorithm design, after the candidate has already traced an
// example, moves the session straight into implementation. Coding activity is
// taken as evidence that design is done.
func AutoAdvanceOnCode(s *models.Session) bool {
	if s.CurrentStage != models.StageAlgorithmDesign {
		return false
	}
	if !s.HasCode || !s.Progress.AlgorithmTraced {
		return false
	}

	utils.LogStage("Session %s: auto-advance %s -> %s", s.ID, s.CurrentStage, models.StageImplementation)
	s.CurrentStage = models.StageImplementation
	s.StageStartTime = timeNow()
	s.Progress.CodeStarted = true
	return true
}

// ContentComplete reports whether the interview has covered everything the
// protocol asks for.
func ContentComplete(s *models.Session) bool {
	return s.CurrentStage == models.StageAnalysis &&
		s.Progress.EdgeCasesTested && s.Progress.RuntimeAnalyzed
}
