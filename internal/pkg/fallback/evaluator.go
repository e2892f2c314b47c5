package fallback

import (
	"regexp"
	"strings"
)

type AnswerEvaluation struct {
	Score    int    `json:"score"`
	Positive string `json:"positive"`
	Improve  string `json:"improve"`
	Brief    string `json:"brief"`
}

const (
	baseScore  = 50
	scoreFloor = 30
	// strongScore is the cut between the two brief variants.
	strongScore = 70
)

var (
	digitRe     = regexp.MustCompile(`[0-9]`)
	structureRe = regexp.MustCompile(`(?i)\b(first|second|then|next|finally|however|therefore|because|in conclusion|as a result)\b`)
	sentenceRe  = regexp.MustCompile(`[.!?]`)

	specificityMarkers = []string{
		"for example", "for instance", "specifically", "result", "improved",
		"reduced", "increased", "achieved", "measured", "delivered",
	}
)

var wordBonuses = []struct {
	min   int
	bonus int
}{
	{20, 5},
	{50, 10},
	{100, 5},
	{150, 5},
}

var (
	positivePhrases = []string{
		"You addressed the question directly and stayed on topic.",
		"Your answer shows genuine engagement with the problem.",
		"You communicated your ideas in a clear, understandable way.",
		"You drew on relevant experience to support your answer.",
		"Your reasoning was easy to follow.",
	}
	improvePhrases = []string{
		"Add a concrete example with measurable results.",
		"Structure the answer as situation, task, action and result.",
		"Explain the impact of your actions in more detail.",
		"Be more specific about your own contribution.",
		"Close with a short summary that ties back to the question.",
	}
	briefTemplates = []struct {
		strong string
		weak   string
	}{
		{"Strong answer with good detail.", "Reasonable start, but it needs more depth."},
		{"Well-structured and convincing response.", "The answer lacks structure and specifics."},
		{"Solid answer that would impress most interviewers.", "An interviewer would likely ask for more detail here."},
	}
)

// Cap is the highest heuristic score reachable at difficulty d.
func Cap(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return 95
	case DifficultyMedium:
		return 90
	case DifficultyHard:
		return 85
	case DifficultyExpert:
		return 80
	}
	return 90
}

// Score is the deterministic part of Evaluate.
func Score(answer string, difficulty Difficulty) int {
	score := baseScore

	words := len(strings.Fields(answer))
	for _, b := range wordBonuses {
		if words >= b.min {
			score += b.bonus
		}
	}

	sentences := CountSentences(answer)
	if sentences >= 2 {
		score += 5
	}
	if sentences >= 4 {
		score += 5
	}

	if digitRe.MatchString(answer) {
		score += 5
	}
	if hasSpecificity(answer) {
		score += 5
	}
	if structureRe.MatchString(answer) {
		score += 5
	}

	if c := Cap(difficulty); score > c {
		score = c
	}
	if score < scoreFloor {
		score = scoreFloor
	}
	return score
}

// CountSentences counts the non-empty segments between '.', '!' and '?'.
func CountSentences(text string) int {
	n := 0
	for _, s := range sentenceRe.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}

func hasSpecificity(answer string) bool {
	lower := strings.ToLower(answer)
	for _, m := range specificityMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// Evaluate scores answer and attaches feedback prose. The question text does
// not influence the heuristic.
func (e *Engine) Evaluate(_, answer string, difficulty Difficulty) AnswerEvaluation {
	score := Score(answer, difficulty)

	tpl := briefTemplates[e.intn(len(briefTemplates))]
	brief := tpl.weak
	if score >= strongScore {
		brief = tpl.strong
	}

	return AnswerEvaluation{
		Score:    score,
		Positive: e.pick(positivePhrases),
		Improve:  e.pick(improvePhrases),
		Brief:    brief,
	}
}
