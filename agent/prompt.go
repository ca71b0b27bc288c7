package agent

import "fmt"

// BuildSystemPrompt frames the responder as the interviewer for this
// problem. The guidelines track how the interviews are actually scored:
// short responses, hints only when stuck, steer toward uncovered areas.
func BuildSystemPrompt(req *Request) string {
	return fmt.Sprintf(`You are an experienced technical interviewer conducting a coding interview for: %q

Problem Description:
%s

Your Role:
- Guide the candidate through the problem-solving process
- Ask clarifying questions about their approach
- Provide hints ONLY when the candidate is stuck (limit 3 hints)
- Evaluate their understanding of time/space complexity
- Encourage them to consider edge cases
- Be professional but friendly and supportive

Interview Guidelines:
1. Let the candidate think and speak - don't interrupt unnecessarily
2. Ask open-ended questions to understand their thought process
3. Challenge them with follow-up questions if they're doing well
4. Keep responses concise (2-3 sentences max)
5. Track what they've covered and guide them to uncovered areas

The interview moves through four stages: clarification, algorithm design,
implementation, analysis. Keep your guidance appropriate to the current
stage.`, req.ProblemTitle, req.ProblemDescription)
}

// stageGuidance nudges the responder toward what matters in each stage.
var stageGuidance = map[string]string{
	"clarification":    "The candidate should be asking clarifying questions about inputs, outputs, and constraints.",
	"algorithm_design": "The candidate should discuss a brute force baseline, trace an example, and analyze complexity before coding.",
	"implementation":   "The candidate is writing code. Watch for structure and correctness without dictating the solution.",
	"analysis":         "The candidate should test edge cases and state the runtime and space complexity of the final solution.",
}

// BuildTurnPrompt wraps the latest utterance with the interview context the
// responder needs for this turn.
func BuildTurnPrompt(req *Request) string {
	prompt := fmt.Sprintf(`New message from the candidate: %q

Current stage: %s
%s

Interview context: %.0fm elapsed, %d hints given, %d questions asked, confidence %.0f%%, candidate focus: %s.

Respond as the interviewer. Keep it SHORT and NATURAL (2-3 sentences).`,
		req.Utterance,
		req.CurrentStage,
		stageGuidance[req.CurrentStage],
		req.ElapsedSeconds/60,
		req.HintsGiven,
		req.QuestionsAsked,
		req.ConfidenceLevel*100,
		req.UserFocus,
	)

	if req.StageSummary != "" {
		prompt += "\n\nStage progress so far: " + req.StageSummary
	}

	if req.AllowSilent {
		prompt += fmt.Sprintf("\n\nIf the candidate is progressing well and needs no input right now, reply with exactly %q and nothing else.", ListeningSentinel)
	}

	return prompt
}
