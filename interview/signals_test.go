package interview

import (
	"testing"

	"github.com/adamspd/InterviewCoach/models"
)

func newTestSession() *models.Session {
	return models.NewSession("test-session", "p1", "Two Sum", "Find two numbers that add up to target.")
}

func TestStruggleSignalLowersConfidence(t *testing.T) {
	s := newTestSession()

	state := ExtractUserState(s, "Hmm, I'm not sure about this")
	if !state.IsStruggling {
		t.Error("expected struggle signal")
	}
	if s.UserFocus != models.FocusStuck {
		t.Errorf("UserFocus = %s, want %s", s.UserFocus, models.FocusStuck)
	}
	if s.ConfidenceLevel != 0.4 {
		t.Errorf("ConfidenceLevel = %.2f, want 0.40", s.ConfidenceLevel)
	}
}

func TestConfidenceNeverLeavesBand(t *testing.T) {
	s := newTestSession()

	// Hammer the struggle path well past the floor.
	for i := 0; i < 10; i++ {
		ExtractUserState(s, "I'm stuck")
	}
	if s.ConfidenceLevel < 0.2 {
		t.Errorf("ConfidenceLevel = %.2f, below floor 0.2", s.ConfidenceLevel)
	}

	// And the confidence path past the ceiling.
	for i := 0; i < 20; i++ {
		ExtractUserState(s, "I think the approach is solid")
	}
	if s.ConfidenceLevel > 1.0 {
		t.Errorf("ConfidenceLevel = %.2f, above ceiling 1.0", s.ConfidenceLevel)
	}
}

func TestStruggleTakesPrecedenceOverConfidence(t *testing.T) {
	s := newTestSession()

	state := ExtractUserState(s, "I'm not sure, but I think the approach is right")
	if !state.IsStruggling || !state.IsConfident {
		t.Fatalf("expected both signals to fire, got struggling=%t confident=%t", state.IsStruggling, state.IsConfident)
	}
	// Struggle wins: confidence drops, focus goes to stuck.
	if s.ConfidenceLevel != 0.4 {
		t.Errorf("ConfidenceLevel = %.2f, want 0.40", s.ConfidenceLevel)
	}
	if s.UserFocus != models.FocusStuck {
		t.Errorf("UserFocus = %s, want %s", s.UserFocus, models.FocusStuck)
	}
}

func TestConfidenceDoesNotChangeFocus(t *testing.T) {
	s := newTestSession()
	s.UserFocus = models.FocusStuck

	state := ExtractUserState(s, "I think the approach is solid")
	if !state.IsConfident {
		t.Fatal("expected confidence signal")
	}
	if s.ConfidenceLevel != 0.6 {
		t.Errorf("ConfidenceLevel = %.2f, want 0.60", s.ConfidenceLevel)
	}
	// Focus is owned by the struggle, silence and coding paths.
	if s.UserFocus != models.FocusStuck {
		t.Errorf("UserFocus = %s, want %s (confidence alone must not clear it)", s.UserFocus, models.FocusStuck)
	}
}

func TestWordCount(t *testing.T) {
	s := newTestSession()
	state := ExtractUserState(s, "one two three four")
	if state.WordCount != 4 {
		t.Errorf("WordCount = %d, want 4", state.WordCount)
	}
}

func TestClarificationScenario(t *testing.T) {
	s := newTestSession()

	ExtractStageSignals(s, "What is the expected output for an empty array?")
	if s.Progress.ClarifyingQuestionsAsked != 1 {
		t.Errorf("ClarifyingQuestionsAsked = %d, want 1", s.Progress.ClarifyingQuestionsAsked)
	}
	if !s.Progress.InputOutputUnderstood {
		t.Error("expected InputOutputUnderstood after input/output question")
	}
	if ShouldAdvance(s) {
		t.Error("should not advance after a single clarifying question")
	}

	ExtractStageSignals(s, "Can I assume the array is sorted?")
	if s.Progress.ClarifyingQuestionsAsked != 2 {
		t.Errorf("ClarifyingQuestionsAsked = %d, want 2", s.Progress.ClarifyingQuestionsAsked)
	}
	if !s.Progress.ConstraintsDiscussed {
		t.Error("expected ConstraintsDiscussed after constraint question")
	}
	if !ShouldAdvance(s) {
		t.Error("should advance once 2 questions asked and input/output understood")
	}
}

func TestAlgorithmDesignSignals(t *testing.T) {
	s := newTestSession()
	s.CurrentStage = models.StageAlgorithmDesign

	ExtractStageSignals(s, "A brute force approach would be nested loops, O(n^2) time")
	if !s.Progress.BruteForceDiscussed {
		t.Error("expected BruteForceDiscussed")
	}
	if !s.Progress.ComplexityAnalyzed {
		t.Error("expected ComplexityAnalyzed")
	}

	ExtractStageSignals(s, "Let me walk through an example with [2,7,11,15]")
	if !s.Progress.AlgorithmTraced {
		t.Error("expected AlgorithmTraced")
	}

	if !ShouldAdvance(s) {
		t.Error("should advance once traced with brute force discussed")
	}
}

func TestAnalysisSignals(t *testing.T) {
	s := newTestSession()
	s.CurrentStage = models.StageAnalysis

	ExtractStageSignals(s, "We should test the empty array edge case")
	ExtractStageSignals(s, "The runtime is O(n) and space complexity is O(n) too")

	p := s.Progress
	if !p.EdgeCasesTested || !p.RuntimeAnalyzed || !p.SpaceAnalyzed {
		t.Errorf("analysis flags = edge:%t runtime:%t space:%t, want all true",
			p.EdgeCasesTested, p.RuntimeAnalyzed, p.SpaceAnalyzed)
	}
}

func TestApproachTrackedInAnyStage(t *testing.T) {
	s := newTestSession()

	ExtractStageSignals(s, "My approach will be a hash map")
	if !s.Progress.ApproachExplained {
		t.Error("expected ApproachExplained to be tracked during clarification")
	}
}

func TestCountersAreMonotonic(t *testing.T) {
	s := newTestSession()

	for i := 0; i < 5; i++ {
		ExtractStageSignals(s, "Is the input always valid?")
	}
	if s.Progress.ClarifyingQuestionsAsked != 5 {
		t.Errorf("ClarifyingQuestionsAsked = %d, want 5", s.Progress.ClarifyingQuestionsAsked)
	}

	// A non-matching utterance never decrements anything.
	before := s.Progress.ClarifyingQuestionsAsked
	ExtractStageSignals(s, "okay")
	if s.Progress.ClarifyingQuestionsAsked != before {
		t.Error("counter changed on non-matching utterance")
	}
}
