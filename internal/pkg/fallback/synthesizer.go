package fallback

import (
	"fmt"
	"math"
)

type ReportMeta struct {
	JobRole       string
	InterviewType Category
	Difficulty    Difficulty
}

type SkillScores struct {
	Communication int `json:"communication"`
	Relevance     int `json:"relevance"`
	Confidence    int `json:"confidence"`
	Structure     int `json:"structure"`
	Depth         int `json:"depth"`
}

type InterviewReport struct {
	OverallScore   int         `json:"overall_score"`
	Grade          Grade       `json:"grade"`
	Skills         SkillScores `json:"skills"`
	Strengths      []string    `json:"strengths"`
	Improvements   []string    `json:"improvements"`
	Recommendation string      `json:"recommendation"`
	Summary        string      `json:"summary"`
}

// DefaultOverallScore is reported when no question was answered.
const DefaultOverallScore = 60

// Jitter ranges per sub-skill.
const (
	communicationRange = 10
	relevanceRange     = 10
	confidenceRange    = 8
	structureRange     = 10
	depthRange         = 12
)

var summaryPrefixes = map[Difficulty]string{
	DifficultyEasy:   "On an introductory set of questions",
	DifficultyMedium: "On a standard set of questions",
	DifficultyHard:   "On a demanding set of questions",
	DifficultyExpert: "On an expert-level set of questions",
}

// OverallScore is round(mean(scores)), or DefaultOverallScore for none.
func OverallScore(scores []int) int {
	if len(scores) == 0 {
		return DefaultOverallScore
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return int(math.Round(float64(sum) / float64(len(scores))))
}

// Synthesize builds a report from the scores of answered questions only.
func (e *Engine) Synthesize(meta ReportMeta, scores []int) InterviewReport {
	overall := OverallScore(scores)
	interviewType := string(meta.InterviewType)

	prefix, ok := summaryPrefixes[meta.Difficulty]
	if !ok {
		prefix = summaryPrefixes[DifficultyMedium]
	}

	return InterviewReport{
		OverallScore: overall,
		Grade:        ScoreToGrade(overall),
		Skills: SkillScores{
			Communication: e.skill(overall, communicationRange),
			Relevance:     e.skill(overall, relevanceRange),
			Confidence:    e.skill(overall, confidenceRange),
			Structure:     e.skill(overall, structureRange),
			Depth:         e.skill(overall, depthRange),
		},
		Strengths: []string{
			fmt.Sprintf("Showed a clear understanding of what %s questions are looking for.", interviewType),
			fmt.Sprintf("Connected answers to the responsibilities of a %s.", meta.JobRole),
			"Stayed engaged and responsive throughout the interview.",
		},
		Improvements: []string{
			"Support claims with concrete examples and measurable outcomes.",
			fmt.Sprintf("Use a consistent structure when answering %s questions.", interviewType),
			fmt.Sprintf("Research common %s scenarios to deepen your answers.", meta.JobRole),
		},
		Recommendation: fmt.Sprintf(
			"Keep practising %s interviews for the %s role, focusing on specific examples and structured answers.",
			interviewType, meta.JobRole,
		),
		Summary: fmt.Sprintf("%s, you scored %d overall (%s) for the %s role.", prefix, overall, ScoreToGrade(overall), meta.JobRole),
	}
}

func (e *Engine) skill(overall, r int) int {
	return clamp(overall+e.jitter(r), 0, 100)
}
