// Package fallback is the local interview engine used whenever the external
// generator is disabled or fails: question selection, answer scoring and
// report synthesis.
package fallback

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
	DifficultyExpert Difficulty = "Expert"
)

// ParseDifficulty is case-insensitive. ok is false for unknown values.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, true
	case "medium":
		return DifficultyMedium, true
	case "hard":
		return DifficultyHard, true
	case "expert":
		return DifficultyExpert, true
	}
	return Difficulty(s), false
}

// Rand is the subset of *rand.Rand the engine draws from.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Engine owns the randomness source. Scores never depend on it; only
// question order, phrasing and sub-skill jitter do.
type Engine struct {
	mu  sync.Mutex
	rnd Rand
}

// NewEngine uses rnd for every draw. A nil rnd gets a time-seeded source.
func NewEngine(rnd Rand) *Engine {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rnd: rnd}
}

// NewSeededEngine is shorthand for NewEngine(rand.New(rand.NewSource(seed))).
func NewSeededEngine(seed int64) *Engine {
	return NewEngine(rand.New(rand.NewSource(seed)))
}

func (e *Engine) intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rnd.Intn(n)
}

func (e *Engine) pick(options []string) string {
	return options[e.intn(len(options))]
}

// jitter draws uniformly from [-r, r].
func (e *Engine) jitter(r int) int {
	return e.intn(2*r+1) - r
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
