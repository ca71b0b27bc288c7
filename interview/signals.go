package interview

import (
	"math"
	"strings"
	"time"

	"github.com/adamspd/InterviewCoach/models"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// UserState is the per-utterance read of the candidate's state.
type UserState struct {
	IsStruggling bool
	IsConfident  bool
	IsComplete   bool
	WordCount    int
}

// ExtractUserState reads struggle/confidence/completion signals from an
// utterance and applies the confidence update to the session. Struggle takes
// precedence when both fire: confidence is only applied on a confident,
// non-struggling utterance. ConfidenceLevel never leaves [0.2, 1.0].
func ExtractUserState(s *models.Session, text string) UserState {
	state := UserState{
		IsStruggling: Matches(CategoryStruggle, text),
		IsConfident:  Matches(CategoryConfidence, text),
		IsComplete:   Matches(CategoryCompletion, text),
		WordCount:    len(strings.Fields(text)),
	}

	if state.IsStruggling {
		s.UserFocus = models.FocusStuck
		s.ConfidenceLevel = math.Max(0.2, s.ConfidenceLevel-0.1)
	} else if state.IsConfident {
		// Confidence only moves the level; focus is owned by the struggle,
		// silence and coding paths.
		s.ConfidenceLevel = math.Min(1.0, s.ConfidenceLevel+0.1)
	}

	return state
}

// ExtractStageSignals updates the session's progress record with whatever
// evidence the utterance carries for the current stage. Counters only ever
// increase and flags never flip back to false.
func ExtractStageSignals(s *models.Session, text string) {
	p := &s.Progress

	// Approach mentions count no matter which stage they land in; the
	// intervention policy watches this across the whole interview.
	if Matches(CategoryApproach, text) {
		p.ApproachExplained = true
	}

	switch s.CurrentStage {
	case models.StageClarification:
		if Matches(CategoryClarifyingQuestion, text) {
			p.ClarifyingQuestionsAsked++
		}
		if Matches(CategoryInputOutput, text) {
			p.InputOutputUnderstood = true
		}
		if Matches(CategoryConstraints, text) {
			p.ConstraintsDiscussed = true
		}

	case models.StageAlgorithmDesign:
		if Matches(CategoryBruteForce, text) {
			p.BruteForceDiscussed = true
		}
		if Matches(CategoryOptimization, text) {
			p.OptimizationDiscussed = true
		}
		if Matches(CategoryTrace, text) {
			p.AlgorithmTraced = true
		}
		if Matches(CategoryComplexity, text) {
			p.ComplexityAnalyzed = true
		}
		if Matches(CategoryTradeoffs, text) {
			p.TradeoffsDiscussed = true
		}

	case models.StageImplementation:
		if p.CodeStarted && Matches(CategoryCompletion, text) {
			p.CodeComplete = true
		}

	case models.StageAnalysis:
		if Matches(CategoryEdgeCases, text) {
			p.EdgeCasesTested = true
		}
		if Matches(CategoryRuntime, text) {
			p.RuntimeAnalyzed = true
		}
		if Matches(CategorySpace, text) {
			p.SpaceAnalyzed = true
		}
	}
}
