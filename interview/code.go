package interview

import (
	"strings"

	"github.com/adamspd/InterviewCoach/models"
)

// Keyword sets for the structural code heuristics. These are deliberately
// loose: the monitor never parses code, it only looks for recognizable
// markers across common interview languages.
var (
	functionKeywords = []string{"def ", "function ", "func ", "fn ", "=>", "void ", "public "}
	returnKeywords   = []string{"return"}
	edgeKeywords     = []string{"if ", "null", "none", "nil", "empty", "len(", ".length", "size()", "except", "catch"}
)

// CodeFacts is what one code-buffer snapshot derives.
type CodeFacts struct {
	LineCount   int
	HasCode     bool
	Issues      []string
	Suggestions []string
}

// AnalyzeCode derives structural facts from a code buffer. Missing function
// definitions and missing returns are issues; a very short buffer or missing
// edge-case handling only earns a suggestion.
func AnalyzeCode(code string) CodeFacts {
	facts := CodeFacts{
		HasCode: strings.TrimSpace(code) != "",
	}
	if code != "" {
		facts.LineCount = len(strings.Split(code, "\n"))
	}
	if !facts.HasCode {
		return facts
	}

	lower := strings.ToLower(code)

	if !containsAny(lower, functionKeywords) {
		facts.Issues = append(facts.Issues, "no function definition")
	}
	if !containsAny(lower, returnKeywords) {
		facts.Issues = append(facts.Issues, "missing return statement")
	}
	if facts.LineCount < 3 {
		facts.Suggestions = append(facts.Suggestions, "code looks incomplete")
	}
	if !containsAny(lower, edgeKeywords) {
		facts.Suggestions = append(facts.Suggestions, "no edge case handling")
	}

	return facts
}

// IngestCodeUpdate applies a code-change event to the session. Issues from a
// given buffer are counted once: re-analyzing an unchanged buffer reports the
// same facts but does not inflate the syntax issue count.
func IngestCodeUpdate(s *models.Session, code, language string) CodeFacts {
	facts := AnalyzeCode(code)

	s.Code = code
	s.CodeLanguage = language
	s.HasCode = facts.HasCode
	s.CodeLines = facts.LineCount

	if facts.HasCode {
		s.Progress.CodeStarted = true
		s.UserFocus = models.FocusCoding
	}

	if code != s.LastAnalyzedCode {
		s.Progress.SyntaxIssueCount += len(facts.Issues)
		s.LastAnalyzedCode = code
	}

	return facts
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
