package models

import "math"

// StageGrade is the scored breakdown for one interview stage. Derived at
// feedback time, never stored on the session. Scores are fractions in [0,1];
// Percentages scales them for the wire.
type StageGrade struct {
	StageName    string   `json:"stage_name"`
	Score        float64  `json:"score"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"areas_for_improvement"`
	Completed    bool     `json:"completed"`
}

// FeedbackReport is the terminal artifact of an interview. Immutable after
// creation.
type FeedbackReport struct {
	OverallGrade             string                `json:"overall_grade"`
	OverallScore             float64               `json:"overall_score"`
	StagesCompleted          int                   `json:"stages_completed"`
	TotalTimeMinutes         float64               `json:"total_time_minutes"`
	HintsUsed                int                   `json:"hints_used"`
	ConfidenceLevel          float64               `json:"confidence_level"`
	StageGrades              map[string]StageGrade `json:"stage_grades"`
	KeyStrengths             []string              `json:"key_strengths"`
	KeyImprovements          []string              `json:"key_improvements"`
	NextSteps                []string              `json:"next_steps"`
	DifficultyRecommendation string                `json:"difficulty_recommendation"`
}

// Percentages returns a copy with scores scaled to 0-100 and rounded to one
// decimal, which is what the frontend renders and the archive stores.
func (r FeedbackReport) Percentages() FeedbackReport {
	out := r
	out.OverallScore = round1(r.OverallScore * 100)
	out.ConfidenceLevel = round1(r.ConfidenceLevel * 100)
	out.TotalTimeMinutes = round1(r.TotalTimeMinutes)
	out.StageGrades = make(map[string]StageGrade, len(r.StageGrades))
	for name, g := range r.StageGrades {
		g.Score = round1(g.Score * 100)
		out.StageGrades[name] = g
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
