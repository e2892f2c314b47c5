package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/evandrarf/mock-interview-be/internal/pkg/fallback"
	"github.com/evandrarf/mock-interview-be/internal/pkg/llm"
)

var (
	errEmptyQuestions = errors.New("AI returned fewer questions than requested")
	errBadEvaluation  = errors.New("AI evaluation missing required fields")
	errBadReport      = errors.New("AI report missing required fields")
)

type aiQuestionsJSON struct {
	Questions []string `json:"questions"`
}

type aiEvaluationJSON struct {
	Score    *int   `json:"score"`
	Positive string `json:"positive"`
	Improve  string `json:"improve"`
	Brief    string `json:"brief"`
}

type qaPair struct {
	Question string
	Answer   string
	Score    int
}

func questionPrompt(req fallback.SelectionRequest) string {
	topic := req.Topic
	if topic == "" {
		topic = "any topic relevant to the role"
	}
	return fmt.Sprintf(`Generate %d %s interview questions for a candidate applying for the %s role.

Difficulty: %s
Focus topic: %s

Rules:
- Each question must be answerable verbally in two to three minutes
- Do not number the questions
- Do not repeat questions

Return ONLY valid JSON, NO markdown, NO code blocks.
JSON format:
{"questions":["...","..."]}`,
		req.NumQuestions, req.InterviewType, req.JobRole, req.Difficulty, topic)
}

// parseQuestions keeps the first n non-empty questions; fewer than n is an error.
func parseQuestions(text string, n int) ([]string, error) {
	var parsed aiQuestionsJSON
	if err := json.Unmarshal([]byte(llm.CleanJSON(text)), &parsed); err != nil {
		return nil, fmt.Errorf("AI output is not valid json: %w", err)
	}

	questions := make([]string, 0, n)
	for _, q := range parsed.Questions {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		questions = append(questions, q)
		if len(questions) == n {
			break
		}
	}
	if len(questions) < n {
		return nil, errEmptyQuestions
	}
	return questions, nil
}

func evaluationPrompt(jobRole string, difficulty fallback.Difficulty, question, answer string) string {
	return fmt.Sprintf(`Evaluate a mock interview answer for the %s role at %s difficulty.

Question: %s
Answer: %s

Score from 0 to 100. Give one sentence on what went well, one sentence on what to improve,
and a one sentence overall brief.

Return ONLY valid JSON, NO markdown, NO code blocks.
JSON format:
{"score":72,"positive":"...","improve":"...","brief":"..."}`,
		jobRole, difficulty, question, answer)
}

// parseEvaluation clamps the score to the difficulty cap and regrades it locally.
func parseEvaluation(text string, difficulty fallback.Difficulty) (fallback.AnswerEvaluation, error) {
	var parsed aiEvaluationJSON
	if err := json.Unmarshal([]byte(llm.CleanJSON(text)), &parsed); err != nil {
		return fallback.AnswerEvaluation{}, fmt.Errorf("AI output is not valid json: %w", err)
	}
	if parsed.Score == nil || parsed.Positive == "" || parsed.Improve == "" {
		return fallback.AnswerEvaluation{}, errBadEvaluation
	}

	score := *parsed.Score
	if score < 0 {
		score = 0
	}
	if c := fallback.Cap(difficulty); score > c {
		score = c
	}
	return fallback.AnswerEvaluation{
		Score:    score,
		Positive: parsed.Positive,
		Improve:  parsed.Improve,
		Brief:    parsed.Brief,
	}, nil
}

func reportPrompt(meta fallback.ReportMeta, pairs []qaPair) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a final report for a %s mock interview for the %s role at %s difficulty.\n\n",
		meta.InterviewType, meta.JobRole, meta.Difficulty)
	for i, p := range pairs {
		fmt.Fprintf(&b, "Q%d: %s\nA%d (scored %d): %s\n\n", i+1, p.Question, i+1, p.Score, p.Answer)
	}
	b.WriteString(`Return ONLY valid JSON, NO markdown, NO code blocks.
JSON format:
{"overall_score":74,"skills":{"communication":70,"relevance":75,"confidence":72,"structure":68,"depth":71},
"strengths":["...","...","..."],"improvements":["...","...","..."],"recommendation":"...","summary":"..."}`)
	return b.String()
}

// parseReport validates the AI report; grade is always derived from the overall score.
func parseReport(text string) (fallback.InterviewReport, error) {
	var parsed fallback.InterviewReport
	if err := json.Unmarshal([]byte(llm.CleanJSON(text)), &parsed); err != nil {
		return fallback.InterviewReport{}, fmt.Errorf("AI output is not valid json: %w", err)
	}
	if parsed.OverallScore < 0 || parsed.OverallScore > 100 ||
		len(parsed.Strengths) == 0 || len(parsed.Improvements) == 0 || parsed.Recommendation == "" {
		return fallback.InterviewReport{}, errBadReport
	}
	for _, s := range []int{
		parsed.Skills.Communication, parsed.Skills.Relevance, parsed.Skills.Confidence,
		parsed.Skills.Structure, parsed.Skills.Depth,
	} {
		if s < 0 || s > 100 {
			return fallback.InterviewReport{}, errBadReport
		}
	}
	parsed.Grade = fallback.ScoreToGrade(parsed.OverallScore)
	return parsed, nil
}
