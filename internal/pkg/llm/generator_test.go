package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingGenerator struct {
	calls       int
	hadDeadline bool
}

func (r *recordingGenerator) Name() string { return "recording" }

func (r *recordingGenerator) GenerateText(ctx context.Context, _ string) (string, error) {
	r.calls++
	_, r.hadDeadline = ctx.Deadline()
	return `{"ok":true}`, nil
}

func TestGuardRateLimit(t *testing.T) {
	next := &recordingGenerator{}
	g := NewGuard(next, 2, 0)

	for i := 0; i < 2; i++ {
		_, err := g.GenerateText(context.Background(), "p")
		require.NoError(t, err)
	}
	_, err := g.GenerateText(context.Background(), "p")
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, 2, next.calls)
	assert.Equal(t, "recording", g.Name())
}

func TestGuardUnlimitedAndTimeout(t *testing.T) {
	next := &recordingGenerator{}
	g := NewGuard(next, 0, time.Second)

	for i := 0; i < 100; i++ {
		_, err := g.GenerateText(context.Background(), "p")
		require.NoError(t, err)
	}
	assert.Equal(t, 100, next.calls)
	assert.True(t, next.hadDeadline)
}

func TestNew(t *testing.T) {
	_, err := New(context.Background(), Config{Provider: ProviderOpenAI})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = New(context.Background(), Config{Provider: "carrier-pigeon", APIKey: "k"})
	assert.Error(t, err)

	g, err := New(context.Background(), Config{APIKey: "k", RequestsPerMinute: 10})
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, g.Name())
}

func TestCleanJSON(t *testing.T) {
	tests := map[string]string{
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"```{\"a\":1}```":         `{"a":1}`,
		"  {\"a\":1}  ":           `{"a":1}`,
	}
	for in, want := range tests {
		assert.Equal(t, want, CleanJSON(in))
	}
}
