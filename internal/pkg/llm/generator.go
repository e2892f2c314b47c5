package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

var (
	ErrNotConfigured = errors.New("llm client not configured")
	ErrRateLimited   = errors.New("llm rate limit exceeded")
)

const systemPrompt = "You are an experienced hiring manager running a mock job interview. " +
	"Always answer with a single valid JSON object and nothing else."

// Generator returns the raw text of one completion.
type Generator interface {
	Name() string
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type Config struct {
	Provider          string
	APIKey            string
	Model             string
	BaseURL           string
	Timeout           time.Duration
	RequestsPerMinute int
}

// New builds the configured provider wrapped in a Guard. It returns
// ErrNotConfigured when no API key is set.
func New(ctx context.Context, cfg Config) (Generator, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}

	var g Generator
	switch strings.ToLower(cfg.Provider) {
	case ProviderGemini:
		c, err := NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		g = c
	case ProviderOpenAI, "":
		g = NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}

	return NewGuard(g, cfg.RequestsPerMinute, cfg.Timeout), nil
}

// Guard bounds every call with a timeout and a request budget. Calls over
// budget fail fast with ErrRateLimited instead of queueing.
type Guard struct {
	next    Generator
	limiter *rate.Limiter
	timeout time.Duration
}

// NewGuard allows perMinute requests per minute (unlimited when <= 0).
func NewGuard(next Generator, perMinute int, timeout time.Duration) *Guard {
	limit := rate.Inf
	burst := 0
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
		burst = perMinute
	}
	return &Guard{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
		timeout: timeout,
	}
}

func (g *Guard) Name() string { return g.next.Name() }

func (g *Guard) GenerateText(ctx context.Context, prompt string) (string, error) {
	if !g.limiter.Allow() {
		return "", ErrRateLimited
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	return g.next.GenerateText(ctx, prompt)
}

// CleanJSON strips markdown code fences some models wrap around JSON.
func CleanJSON(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
