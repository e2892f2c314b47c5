package fallback

type Grade string

const (
	GradeExcellent        Grade = "Excellent"
	GradeGood             Grade = "Good"
	GradeAverage          Grade = "Average"
	GradeNeedsImprovement Grade = "Needs Improvement"
	GradePoor             Grade = "Poor"
)

// ScoreToGrade is the only score-to-grade mapping in the service. Answer
// feedback, reports and AI-produced scores all go through it.
func ScoreToGrade(score int) Grade {
	switch {
	case score >= 85:
		return GradeExcellent
	case score >= 70:
		return GradeGood
	case score >= 55:
		return GradeAverage
	case score >= 40:
		return GradeNeedsImprovement
	default:
		return GradePoor
	}
}
