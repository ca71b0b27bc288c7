package interview

import (
	"github.com/adamspd/InterviewCoach/models"
)

// Stage weights for the overall score. They sum to 1.0, as does each stage's
// internal contribution table.
const (
	weightClarification   = 0.15
	weightAlgorithmDesign = 0.35
	weightImplementation  = 0.35
	weightAnalysis        = 0.15
)

// GenerateFeedback scores a session and produces the final report. It is a
// pure read of the session: calling it twice on an unchanged session yields
// an identical report (elapsed time is taken from EndedAt once set).
func GenerateFeedback(s *models.Session) *models.FeedbackReport {
	end := timeNow()
	if s.EndedAt != nil {
		end = *s.EndedAt
	}
	elapsedMinutes := end.Sub(s.StartTime).Minutes()

	grades := []models.StageGrade{
		gradeClarification(s),
		gradeAlgorithmDesign(s),
		gradeImplementation(s),
		gradeAnalysis(s),
	}

	overall := grades[0].Score*weightClarification +
		grades[1].Score*weightAlgorithmDesign +
		grades[2].Score*weightImplementation +
		grades[3].Score*weightAnalysis

	// Penalty multipliers, applied in sequence. The under-10-minute check
	// takes precedence over the over-45 one; they never stack.
	if s.HintsGiven > 3 {
		overall *= 0.9
	}
	if elapsedMinutes < 10 {
		overall *= 0.85
	} else if elapsedMinutes > 45 {
		overall *= 0.9
	}

	stageGrades := make(map[string]models.StageGrade, len(grades))
	completed := 0
	var strengths, improvements []string
	for _, g := range grades {
		stageGrades[g.StageName] = g
		if g.Completed {
			completed++
		}
		// Collected in stage order; the report keeps the first few rather
		// than ranking them.
		strengths = append(strengths, g.Strengths...)
		improvements = append(improvements, g.Improvements...)
	}

	return &models.FeedbackReport{
		OverallGrade:             letterGrade(overall),
		OverallScore:             overall,
		StagesCompleted:          completed,
		TotalTimeMinutes:         elapsedMinutes,
		HintsUsed:                s.HintsGiven,
		ConfidenceLevel:          s.ConfidenceLevel,
		StageGrades:              stageGrades,
		KeyStrengths:             firstN(strengths, 3),
		KeyImprovements:          firstN(improvements, 5),
		NextSteps:                nextSteps(overall, elapsedMinutes, s.HintsGiven),
		DifficultyRecommendation: recommendDifficulty(overall),
	}
}

func gradeClarification(s *models.Session) models.StageGrade {
	p := s.Progress
	grade := models.StageGrade{
		StageName: string(models.StageClarification),
		Completed: models.StageIndex(s.CurrentStage) > models.StageIndex(models.StageClarification),
	}

	switch {
	case p.ClarifyingQuestionsAsked >= 3:
		grade.Score += 0.4
		grade.Strengths = append(grade.Strengths, "Asked excellent clarifying questions")
	case p.ClarifyingQuestionsAsked >= 2:
		grade.Score += 0.3
		grade.Strengths = append(grade.Strengths, "Asked good clarifying questions")
	case p.ClarifyingQuestionsAsked >= 1:
		grade.Score += 0.2
	default:
		grade.Improvements = append(grade.Improvements, "Ask clarifying questions before designing a solution")
	}

	if p.InputOutputUnderstood {
		grade.Score += 0.3
		grade.Strengths = append(grade.Strengths, "Confirmed expected inputs and outputs")
	} else {
		grade.Improvements = append(grade.Improvements, "Verify the input and output format up front")
	}

	if p.ConstraintsDiscussed {
		grade.Score += 0.3
		grade.Strengths = append(grade.Strengths, "Discussed problem constraints")
	} else {
		grade.Improvements = append(grade.Improvements, "Probe constraints like input size and value ranges")
	}

	return grade
}

func gradeAlgorithmDesign(s *models.Session) models.StageGrade {
	p := s.Progress
	grade := models.StageGrade{
		StageName: string(models.StageAlgorithmDesign),
		Completed: models.StageIndex(s.CurrentStage) > models.StageIndex(models.StageAlgorithmDesign),
	}

	if p.BruteForceDiscussed {
		grade.Score += 0.25
		grade.Strengths = append(grade.Strengths, "Started with a brute force baseline")
	} else {
		grade.Improvements = append(grade.Improvements, "Establish a brute force baseline before optimizing")
	}

	if p.AlgorithmTraced {
		grade.Score += 0.25
		grade.Strengths = append(grade.Strengths, "Traced the algorithm with a concrete example")
	} else {
		grade.Improvements = append(grade.Improvements, "Walk through an example to validate the algorithm")
	}

	if p.ComplexityAnalyzed {
		grade.Score += 0.25
		grade.Strengths = append(grade.Strengths, "Analyzed complexity during design")
	} else {
		grade.Improvements = append(grade.Improvements, "Analyze time and space complexity before coding")
	}

	if p.OptimizationDiscussed {
		grade.Score += 0.15
		grade.Strengths = append(grade.Strengths, "Pushed past the first idea toward an optimized approach")
	}

	if p.TradeoffsDiscussed {
		grade.Score += 0.10
		grade.Strengths = append(grade.Strengths, "Weighed trade-offs between approaches")
	}

	return grade
}

func gradeImplementation(s *models.Session) models.StageGrade {
	p := s.Progress
	grade := models.StageGrade{
		StageName: string(models.StageImplementation),
		Completed: models.StageIndex(s.CurrentStage) > models.StageIndex(models.StageImplementation),
	}

	if p.CodeStarted {
		grade.Score += 0.3
	} else {
		grade.Improvements = append(grade.Improvements, "Get code on the screen earlier")
	}

	if s.CodeLines >= 10 {
		grade.Score += 0.2
		grade.Strengths = append(grade.Strengths, "Wrote a substantial, well-developed implementation")
	} else if s.CodeLines >= 5 {
		grade.Score += 0.2
		grade.Strengths = append(grade.Strengths, "Made solid progress on the implementation")
	}

	if p.CodeStarted {
		switch {
		case p.SyntaxIssueCount == 0:
			grade.Score += 0.3
			grade.Strengths = append(grade.Strengths, "Clean code with no structural issues flagged")
		case p.SyntaxIssueCount <= 2:
			grade.Score += 0.2
		case p.SyntaxIssueCount <= 4:
			grade.Score += 0.1
		default:
			grade.Improvements = append(grade.Improvements, "Tighten up code structure; several issues were flagged while coding")
		}
	}

	if p.CodeComplete {
		grade.Score += 0.2
		grade.Strengths = append(grade.Strengths, "Brought the implementation to completion")
	}

	return grade
}

func gradeAnalysis(s *models.Session) models.StageGrade {
	p := s.Progress
	grade := models.StageGrade{
		StageName: string(models.StageAnalysis),
		Completed: p.EdgeCasesTested && p.RuntimeAnalyzed,
	}

	if p.EdgeCasesTested {
		grade.Score += 0.4
		grade.Strengths = append(grade.Strengths, "Tested the solution against edge cases")
	} else {
		grade.Improvements = append(grade.Improvements, "Probe edge cases like empty and single-element inputs")
	}

	if p.RuntimeAnalyzed {
		grade.Score += 0.3
		grade.Strengths = append(grade.Strengths, "Analyzed the final runtime")
	} else {
		grade.Improvements = append(grade.Improvements, "State the runtime of your final solution")
	}

	if p.SpaceAnalyzed {
		grade.Score += 0.3
		grade.Strengths = append(grade.Strengths, "Analyzed space usage")
	} else {
		grade.Improvements = append(grade.Improvements, "Account for the space your solution uses")
	}

	return grade
}

// letterGrade maps an overall score to a letter. Inclusive lower bounds,
// highest matching band wins.
func letterGrade(score float64) string {
	switch {
	case score >= 0.95:
		return "A+"
	case score >= 0.90:
		return "A"
	case score >= 0.85:
		return "A-"
	case score >= 0.80:
		return "B+"
	case score >= 0.75:
		return "B"
	case score >= 0.70:
		return "B-"
	case score >= 0.65:
		return "C+"
	case score >= 0.60:
		return "C"
	case score >= 0.55:
		return "C-"
	case score >= 0.50:
		return "D"
	default:
		return "F"
	}
}

func recommendDifficulty(score float64) string {
	switch {
	case score >= 0.85:
		return "hard"
	case score >= 0.70:
		return "medium"
	default:
		return "easy"
	}
}

func nextSteps(score, elapsedMinutes float64, hintsGiven int) []string {
	var steps []string
	switch {
	case score >= 0.85:
		steps = append(steps,
			"You're ready for hard problems - try dynamic programming and graph challenges",
			"Practice explaining optimal solutions under time pressure")
	case score >= 0.70:
		steps = append(steps,
			"Keep practicing medium problems to build consistency",
			"Review the improvement areas above before your next session")
	default:
		steps = append(steps,
			"Build confidence with easier problems first",
			"Rehearse the full loop: clarify, design, implement, analyze")
	}

	if elapsedMinutes < 10 {
		steps = append(steps, "Slow down - use the available time to clarify and verify your work")
	} else if elapsedMinutes > 45 {
		steps = append(steps, "Work on pacing; aim to finish within 45 minutes")
	}

	if hintsGiven >= 3 {
		steps = append(steps, "Practice pushing through blockers before reaching for hints")
	}

	return steps
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
