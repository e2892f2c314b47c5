package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreToGrade(t *testing.T) {
	tests := []struct {
		score int
		want  Grade
	}{
		{100, GradeExcellent},
		{85, GradeExcellent},
		{84, GradeGood},
		{70, GradeGood},
		{69, GradeAverage},
		{55, GradeAverage},
		{54, GradeNeedsImprovement},
		{40, GradeNeedsImprovement},
		{39, GradePoor},
		{0, GradePoor},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreToGrade(tt.score), "score %d", tt.score)
	}
}

func TestOverallScore(t *testing.T) {
	assert.Equal(t, 60, OverallScore(nil))
	assert.Equal(t, 60, OverallScore([]int{}))
	assert.Equal(t, 70, OverallScore([]int{70}))
	assert.Equal(t, 68, OverallScore([]int{65, 70}))
	assert.Equal(t, 67, OverallScore([]int{60, 70, 70}))
}

func TestSynthesizeEmpty(t *testing.T) {
	r := NewSeededEngine(1).Synthesize(ReportMeta{JobRole: "Nurse", InterviewType: CategoryTechnical}, nil)
	assert.Equal(t, 60, r.OverallScore)
	assert.Equal(t, GradeAverage, r.Grade)
}

func TestSynthesizeSkillsStayInRange(t *testing.T) {
	ranges := map[string]int{
		"communication": communicationRange,
		"relevance":     relevanceRange,
		"confidence":    confidenceRange,
		"structure":     structureRange,
		"depth":         depthRange,
	}

	for seed := int64(0); seed < 200; seed++ {
		e := NewSeededEngine(seed)
		for _, scores := range [][]int{{0, 0}, {100, 100}, {55}, {80, 90, 70}} {
			r := e.Synthesize(ReportMeta{JobRole: "Engineer", InterviewType: CategoryBehavioral, Difficulty: DifficultyHard}, scores)
			got := map[string]int{
				"communication": r.Skills.Communication,
				"relevance":     r.Skills.Relevance,
				"confidence":    r.Skills.Confidence,
				"structure":     r.Skills.Structure,
				"depth":         r.Skills.Depth,
			}
			for name, v := range got {
				assert.GreaterOrEqual(t, v, 0, name)
				assert.LessOrEqual(t, v, 100, name)
				assert.LessOrEqual(t, abs(v-r.OverallScore), ranges[name], name)
			}
		}
	}
}

func TestSynthesizeTemplates(t *testing.T) {
	r := NewSeededEngine(9).Synthesize(ReportMeta{JobRole: "Data Analyst", InterviewType: CategorySituational, Difficulty: DifficultyExpert}, []int{90, 80})

	assert.Equal(t, 85, r.OverallScore)
	assert.Equal(t, GradeExcellent, r.Grade)
	require.Len(t, r.Strengths, 3)
	require.Len(t, r.Improvements, 3)
	assert.Contains(t, r.Strengths[1], "Data Analyst")
	assert.Contains(t, r.Improvements[1], "situational")
	assert.Contains(t, r.Recommendation, "Data Analyst")
	assert.Contains(t, r.Recommendation, "situational")
	assert.Contains(t, r.Summary, "expert-level")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
