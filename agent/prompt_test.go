package agent

import (
	"strings"
	"testing"
)

func TestTurnPromptSentinelInstruction(t *testing.T) {
	req := &Request{
		Utterance:    "let me think about this",
		CurrentStage: "algorithm_design",
	}

	prompt := BuildTurnPrompt(req)
	if strings.Contains(prompt, ListeningSentinel) {
		t.Error("sentinel instruction must not appear in push-to-talk mode")
	}

	req.AllowSilent = true
	prompt = BuildTurnPrompt(req)
	if !strings.Contains(prompt, ListeningSentinel) {
		t.Error("silence mode must instruct the model about the listening sentinel")
	}
}

func TestTurnPromptCarriesStageContext(t *testing.T) {
	req := &Request{
		Utterance:    "I'd start with a nested loop",
		CurrentStage: "algorithm_design",
		StageSummary: "brute force: true, traced example: false, complexity: false, optimization: false",
	}

	prompt := BuildTurnPrompt(req)
	if !strings.Contains(prompt, "algorithm_design") {
		t.Error("prompt should name the current stage")
	}
	if !strings.Contains(prompt, req.StageSummary) {
		t.Error("prompt should include the stage progress summary")
	}
	if !strings.Contains(prompt, req.Utterance) {
		t.Error("prompt should quote the candidate's utterance")
	}
}

func TestSystemPromptNamesTheProblem(t *testing.T) {
	req := &Request{
		ProblemTitle:       "Two Sum",
		ProblemDescription: "Find two numbers that add up to target.",
	}

	prompt := BuildSystemPrompt(req)
	if !strings.Contains(prompt, "Two Sum") || !strings.Contains(prompt, req.ProblemDescription) {
		t.Error("system prompt should embed the problem title and description")
	}
}
