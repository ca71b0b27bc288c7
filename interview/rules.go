package interview

import "strings"

// Category names one set of trigger phrases the extractor matches against.
type Category string

const (
	CategoryStruggle   Category = "struggle"
	CategoryConfidence Category = "confidence"
	CategoryCompletion Category = "completion"

	CategoryClarifyingQuestion Category = "clarifying_question"
	CategoryInputOutput        Category = "input_output"
	CategoryConstraints        Category = "constraints"

	CategoryApproach     Category = "approach"
	CategoryBruteForce   Category = "brute_force"
	CategoryOptimization Category = "optimization"
	CategoryTrace        Category = "trace"
	CategoryComplexity   Category = "complexity"
	CategoryTradeoffs    Category = "tradeoffs"

	CategoryEdgeCases Category = "edge_cases"
	CategoryRuntime   Category = "runtime"
	CategorySpace     Category = "space"

	CategoryHint Category = "hint"
)

// triggers is the single rule table driving all keyword extraction. A
// category fires when ANY of its phrases is a substring of the lower-cased
// utterance. No weighting, no negation handling: "not sure the approach is
// right" fires both struggle and confidence, and struggle takes precedence.
var triggers = map[Category][]string{
	CategoryStruggle:   {"stuck", "not sure", "don't know", "confused", "hmm", "uh"},
	CategoryConfidence: {"i think", "definitely", "so we can", "the approach is"},
	CategoryCompletion: {"done", "finished", "that's it", "does that make sense"},

	CategoryClarifyingQuestion: {"?", "can i assume", "should i", "what should", "what if", "do we", "are the", "is the"},
	CategoryInputOutput:        {"input", "output", "return", "expected"},
	CategoryConstraints:        {"constraint", "assume", "sorted", "duplicate", "range", "size", "positive", "negative"},

	CategoryApproach:     {"approach", "algorithm", "solution", "method"},
	CategoryBruteForce:   {"brute force", "naive", "nested loop", "check every", "simple approach"},
	CategoryOptimization: {"optimi", "hash map", "hashmap", "faster", "more efficient", "improve"},
	CategoryTrace:        {"walk through", "trace", "example", "step through", "let's say", "dry run"},
	CategoryComplexity:   {"time complexity", "space complexity", "o(", "big o", "runtime"},
	CategoryTradeoffs:    {"trade-off", "tradeoff", "trade off", "versus", " vs ", "instead of", "downside"},

	CategoryEdgeCases: {"edge case", "empty", "null", "zero", "negative", "single element", "boundary"},
	CategoryRuntime:   {"runtime", "time complexity", "o("},
	CategorySpace:     {"space complexity", "space", "memory"},

	CategoryHint: {"hint", "try", "consider", "what if", "have you thought"},
}

// Matches reports whether any trigger phrase for the category appears in the
// text. Matching is case-insensitive substring containment.
func Matches(category Category, text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range triggers[category] {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// Phrases returns the trigger list for a category, mainly for tests and
// prompt construction.
func Phrases(category Category) []string {
	return triggers[category]
}
