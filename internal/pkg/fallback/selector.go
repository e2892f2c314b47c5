package fallback

import "regexp"

type SelectionRequest struct {
	JobRole       string
	InterviewType Category
	Difficulty    Difficulty
	NumQuestions  int
	Topic         string
}

var personalizeRe = regexp.MustCompile(`(?i)this role|this field|your experience`)

// SelectQuestions shuffles the pool for req.InterviewType and returns the
// first min(NumQuestions, len(pool)) entries. Only the opening question is
// personalised with the job role.
func (e *Engine) SelectQuestions(req SelectionRequest) []string {
	pool := Pool(req.InterviewType)
	if req.NumQuestions <= 0 {
		return []string{}
	}

	e.mu.Lock()
	e.rnd.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	e.mu.Unlock()

	n := req.NumQuestions
	if n > len(pool) {
		n = len(pool)
	}
	selected := pool[:n]

	if n > 0 && req.JobRole != "" {
		selected[0] = Personalize(selected[0], req.JobRole)
	}
	return selected
}

// Personalize replaces generic role references in q with "the {jobRole} role".
func Personalize(q, jobRole string) string {
	return personalizeRe.ReplaceAllLiteralString(q, "the "+jobRole+" role")
}
