package mapper

import (
	"fmt"
	"testing"

	"github.com/evandrarf/mock-interview-be/internal/pkg/fallback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBankEntries(t *testing.T) {
	entries := ToBankEntries()

	total := 0
	for _, c := range fallback.Categories {
		total += len(fallback.Pool(c))
	}
	require.Len(t, entries, total)

	seen := make(map[string]bool)
	for _, e := range entries {
		key := fmt.Sprintf("%s/%d", e.Category, e.Position)
		assert.False(t, seen[key], "duplicate position %s", key)
		seen[key] = true
		assert.GreaterOrEqual(t, e.Position, 1)
		assert.NotEmpty(t, e.QuestionText)
	}

	first := fallback.Pool(fallback.CategoryBehavioral)[0]
	assert.Equal(t, "behavioral", entries[0].Category)
	assert.Equal(t, 1, entries[0].Position)
	assert.Equal(t, first, entries[0].QuestionText)
}
