package interview

import (
	"testing"

	"github.com/adamspd/InterviewCoach/models"
)

func TestAnalyzeCodeFlagsMissingStructure(t *testing.T) {
	facts := AnalyzeCode("x = 1")

	if facts.LineCount != 1 {
		t.Errorf("LineCount = %d, want 1", facts.LineCount)
	}
	if !facts.HasCode {
		t.Error("expected HasCode for non-whitespace buffer")
	}
	if len(facts.Issues) != 2 {
		t.Fatalf("Issues = %v, want 2 entries (no function definition, missing return)", facts.Issues)
	}
}

func TestAnalyzeCodeCleanBuffer(t *testing.T) {
	code := "def two_sum(nums, target):\n    seen = {}\n    for i, n in enumerate(nums):\n        if target - n in seen:\n            return [seen[target-n], i]\n        seen[n] = i\n    return []"
	facts := AnalyzeCode(code)

	if len(facts.Issues) != 0 {
		t.Errorf("Issues = %v, want none", facts.Issues)
	}
	if len(facts.Suggestions) != 0 {
		t.Errorf("Suggestions = %v, want none", facts.Suggestions)
	}
	if facts.LineCount != 7 {
		t.Errorf("LineCount = %d, want 7", facts.LineCount)
	}
}

func TestAnalyzeCodeEmptyBuffer(t *testing.T) {
	facts := AnalyzeCode("")
	if facts.HasCode || facts.LineCount != 0 || len(facts.Issues) != 0 {
		t.Errorf("empty buffer derived %+v, want zero facts", facts)
	}

	facts = AnalyzeCode("   \n  ")
	if facts.HasCode {
		t.Error("whitespace-only buffer should not count as code")
	}
}

func TestIngestCodeUpdateAccumulatesIssues(t *testing.T) {
	s := newTestSession()
	s.CurrentStage = models.StageImplementation

	IngestCodeUpdate(s, "x = 1", "python")
	if s.Progress.SyntaxIssueCount != 2 {
		t.Errorf("SyntaxIssueCount = %d, want 2", s.Progress.SyntaxIssueCount)
	}
	if !s.Progress.CodeStarted {
		t.Error("expected CodeStarted after non-empty code update")
	}
	if s.UserFocus != models.FocusCoding {
		t.Errorf("UserFocus = %s, want %s", s.UserFocus, models.FocusCoding)
	}
}

func TestIngestCodeUpdateDeduplicatesUnchangedBuffer(t *testing.T) {
	s := newTestSession()
	s.CurrentStage = models.StageImplementation

	IngestCodeUpdate(s, "x = 1", "python")
	IngestCodeUpdate(s, "x = 1", "python")
	IngestCodeUpdate(s, "x = 1", "python")

	if s.Progress.SyntaxIssueCount != 2 {
		t.Errorf("SyntaxIssueCount = %d after re-analyzing unchanged buffer, want 2", s.Progress.SyntaxIssueCount)
	}

	// A changed buffer counts again.
	IngestCodeUpdate(s, "y = 2", "python")
	if s.Progress.SyntaxIssueCount != 4 {
		t.Errorf("SyntaxIssueCount = %d after changed buffer, want 4", s.Progress.SyntaxIssueCount)
	}
}
