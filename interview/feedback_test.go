package interview

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/adamspd/InterviewCoach/models"
)

// perfectSession covers every scored behavior across all four stages and
// finishes in 20 minutes with no hints.
func perfectSession() *models.Session {
	s := newTestSession()
	s.CurrentStage = models.StageAnalysis
	s.Progress = models.StageProgress{
		ClarifyingQuestionsAsked: 3,
		InputOutputUnderstood:    true,
		ConstraintsDiscussed:     true,
		ApproachExplained:        true,
		BruteForceDiscussed:      true,
		OptimizationDiscussed:    true,
		AlgorithmTraced:          true,
		ComplexityAnalyzed:       true,
		TradeoffsDiscussed:       true,
		CodeStarted:              true,
		CodeComplete:             true,
		EdgeCasesTested:          true,
		RuntimeAnalyzed:          true,
		SpaceAnalyzed:            true,
	}
	s.CodeLines = 12
	end := s.StartTime.Add(20 * time.Minute)
	s.EndedAt = &end
	return s
}

func scoreNear(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("OverallScore = %.12f, want %.12f", got, want)
	}
}

func TestPerfectSessionReport(t *testing.T) {
	report := GenerateFeedback(perfectSession())

	scoreNear(t, report.OverallScore, 1.0)
	if report.OverallGrade != "A+" {
		t.Errorf("OverallGrade = %s, want A+", report.OverallGrade)
	}
	if report.StagesCompleted != 4 {
		t.Errorf("StagesCompleted = %d, want 4", report.StagesCompleted)
	}
	if report.DifficultyRecommendation != "hard" {
		t.Errorf("DifficultyRecommendation = %s, want hard", report.DifficultyRecommendation)
	}
	if report.TotalTimeMinutes != 20 {
		t.Errorf("TotalTimeMinutes = %.1f, want 20", report.TotalTimeMinutes)
	}
	if len(report.StageGrades) != 4 {
		t.Errorf("StageGrades has %d entries, want 4", len(report.StageGrades))
	}
}

func TestHintPenalty(t *testing.T) {
	s := perfectSession()
	s.HintsGiven = 3
	report := GenerateFeedback(s)
	scoreNear(t, report.OverallScore, 1.0) // 3 hints is still free

	s.HintsGiven = 4
	report = GenerateFeedback(s)
	scoreNear(t, report.OverallScore, 0.9)
	if report.HintsUsed != 4 {
		t.Errorf("HintsUsed = %d, want 4", report.HintsUsed)
	}
}

func TestTimePenaltiesDoNotStack(t *testing.T) {
	s := perfectSession()
	end := s.StartTime.Add(5 * time.Minute)
	s.EndedAt = &end

	report := GenerateFeedback(s)
	scoreNear(t, report.OverallScore, 0.85)

	found := false
	for _, step := range report.NextSteps {
		if strings.Contains(step, "Slow down") {
			found = true
		}
	}
	if !found {
		t.Errorf("NextSteps = %v, want a pacing note for a rushed session", report.NextSteps)
	}

	// Hint and time penalties compose multiplicatively.
	s.HintsGiven = 4
	report = GenerateFeedback(s)
	scoreNear(t, report.OverallScore, 0.9*0.85)
}

func TestOvertimePenalty(t *testing.T) {
	s := perfectSession()
	end := s.StartTime.Add(50 * time.Minute)
	s.EndedAt = &end

	report := GenerateFeedback(s)
	scoreNear(t, report.OverallScore, 0.9)
}

func TestEmptySessionScoresZero(t *testing.T) {
	s := newTestSession()
	end := s.StartTime.Add(20 * time.Minute)
	s.EndedAt = &end

	report := GenerateFeedback(s)
	if report.OverallScore != 0 {
		t.Errorf("OverallScore = %.2f, want 0", report.OverallScore)
	}
	if report.OverallGrade != "F" {
		t.Errorf("OverallGrade = %s, want F", report.OverallGrade)
	}
	if report.StagesCompleted != 0 {
		t.Errorf("StagesCompleted = %d, want 0", report.StagesCompleted)
	}
	if report.DifficultyRecommendation != "easy" {
		t.Errorf("DifficultyRecommendation = %s, want easy", report.DifficultyRecommendation)
	}
}

func TestFeedbackIsIdempotentOnceEnded(t *testing.T) {
	s := perfectSession()
	s.HintsGiven = 4

	first := GenerateFeedback(s)
	second := GenerateFeedback(s)

	if first.OverallScore != second.OverallScore {
		t.Errorf("scores differ across calls: %.12f vs %.12f", first.OverallScore, second.OverallScore)
	}
	if first.TotalTimeMinutes != second.TotalTimeMinutes {
		t.Errorf("elapsed time differs across calls: %.4f vs %.4f", first.TotalTimeMinutes, second.TotalTimeMinutes)
	}
	if first.OverallGrade != second.OverallGrade {
		t.Errorf("grades differ across calls: %s vs %s", first.OverallGrade, second.OverallGrade)
	}
}

func TestKeyListsAreTruncated(t *testing.T) {
	// A blank session collects an improvement from nearly every check.
	s := newTestSession()
	end := s.StartTime.Add(20 * time.Minute)
	s.EndedAt = &end

	report := GenerateFeedback(s)
	if len(report.KeyImprovements) > 5 {
		t.Errorf("KeyImprovements has %d entries, want at most 5", len(report.KeyImprovements))
	}
	if len(report.KeyStrengths) > 3 {
		t.Errorf("KeyStrengths has %d entries, want at most 3", len(report.KeyStrengths))
	}

	// And the perfect session collects a strength from nearly every check.
	report = GenerateFeedback(perfectSession())
	if len(report.KeyStrengths) != 3 {
		t.Errorf("KeyStrengths has %d entries, want 3", len(report.KeyStrengths))
	}
}

func TestLetterGradeBands(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{1.0, "A+"},
		{0.95, "A+"},
		{0.90, "A"},
		{0.8999, "A-"},
		{0.85, "A-"},
		{0.8499, "B+"},
		{0.80, "B+"},
		{0.75, "B"},
		{0.70, "B-"},
		{0.65, "C+"},
		{0.60, "C"},
		{0.55, "C-"},
		{0.50, "D"},
		{0.4999, "F"},
		{0.0, "F"},
	}
	for _, c := range cases {
		if got := letterGrade(c.score); got != c.want {
			t.Errorf("letterGrade(%.4f) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestScoreStaysInUnitRange(t *testing.T) {
	report := GenerateFeedback(perfectSession())
	if report.OverallScore < 0 || report.OverallScore > 1+1e-9 {
		t.Errorf("OverallScore = %.12f, outside [0, 1]", report.OverallScore)
	}
	for name, g := range report.StageGrades {
		if g.Score < 0 || g.Score > 1+1e-9 {
			t.Errorf("stage %s score = %.12f, outside [0, 1]", name, g.Score)
		}
	}
}

func TestPercentagesScaling(t *testing.T) {
	s := perfectSession()
	s.HintsGiven = 4

	report := GenerateFeedback(s).Percentages()
	if math.Abs(report.OverallScore-90.0) > 0.05 {
		t.Errorf("percentage OverallScore = %.2f, want 90.0", report.OverallScore)
	}
	for name, g := range report.StageGrades {
		if g.Score < 0 || g.Score > 100 {
			t.Errorf("percentage stage %s score = %.2f, outside [0, 100]", name, g.Score)
		}
	}
}
