package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectQuestionsLengthAndUniqueness(t *testing.T) {
	e := NewSeededEngine(1)

	tests := []struct {
		name     string
		category Category
		n        int
		want     int
	}{
		{"fewer than pool", CategoryBehavioral, 5, 5},
		{"exactly pool", CategoryTechnical, 15, 15},
		{"more than pool", CategorySituational, 40, 15},
		{"single", CategoryMixed, 1, 1},
		{"zero", CategoryMixed, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.SelectQuestions(SelectionRequest{InterviewType: tt.category, NumQuestions: tt.n})
			require.Len(t, got, tt.want)

			seen := make(map[string]bool)
			for _, q := range got {
				assert.False(t, seen[q], "duplicate question %q", q)
				seen[q] = true
			}
		})
	}
}

func TestSelectQuestionsUnknownCategoryUsesMixed(t *testing.T) {
	e := NewSeededEngine(2)
	mixed := make(map[string]bool)
	for _, q := range Pool(CategoryMixed) {
		mixed[q] = true
	}

	got := e.SelectQuestions(SelectionRequest{InterviewType: Category("puzzles"), NumQuestions: 15})
	require.Len(t, got, 15)
	for _, q := range got {
		assert.True(t, mixed[q], "%q is not in the mixed pool", q)
	}
	assert.Equal(t, CategoryMixed, ParseCategory("puzzles"))
	assert.Equal(t, CategoryTechnical, ParseCategory(" Technical "))
}

func TestSelectQuestionsPersonalizesOnlyFirst(t *testing.T) {
	pool := Pool(CategoryTechnical)
	inPool := make(map[string]bool)
	for _, q := range pool {
		inPool[q] = true
	}

	for seed := int64(0); seed < 20; seed++ {
		got := NewSeededEngine(seed).SelectQuestions(SelectionRequest{
			JobRole:       "Nurse",
			InterviewType: CategoryTechnical,
			Difficulty:    DifficultyHard,
			NumQuestions:  15,
		})
		require.Len(t, got, 15)

		for _, q := range got[1:] {
			assert.True(t, inPool[q], "non-opening question was modified: %q", q)
		}

		matched := false
		for _, orig := range pool {
			if Personalize(orig, "Nurse") == got[0] {
				matched = true
				break
			}
		}
		assert.True(t, matched, "opening question %q does not derive from the pool", got[0])
		assert.NotContains(t, got[0], "this role")
		assert.NotContains(t, got[0], "this field")
		assert.NotContains(t, got[0], "your experience")
	}
}

func TestNurseScenario(t *testing.T) {
	got := NewSeededEngine(3).SelectQuestions(SelectionRequest{
		JobRole:       "Nurse",
		InterviewType: CategoryTechnical,
		Difficulty:    DifficultyHard,
		NumQuestions:  3,
	})
	require.Len(t, got, 3)
	assert.NotEqual(t, got[0], got[1])
	assert.NotEqual(t, got[1], got[2])
	assert.NotEqual(t, got[0], got[2])
}

func TestPersonalize(t *testing.T) {
	assert.Equal(t,
		"Why the Nurse role, and how has the Nurse role shaped you?",
		Personalize("Why THIS ROLE, and how has your experience shaped you?", "Nurse"))
	assert.Equal(t, "Nothing to change.", Personalize("Nothing to change.", "Nurse"))
	assert.Equal(t, "Is the $1 role for you?", Personalize("Is this field for you?", "$1"))
}

func TestSelectQuestionsSeedIsReproducible(t *testing.T) {
	req := SelectionRequest{JobRole: "Engineer", InterviewType: CategoryBehavioral, NumQuestions: 6}
	assert.Equal(t, NewSeededEngine(42).SelectQuestions(req), NewSeededEngine(42).SelectQuestions(req))
}

func TestPoolReturnsCopy(t *testing.T) {
	p := Pool(CategoryMixed)
	p[0] = "mutated"
	assert.NotEqual(t, "mutated", Pool(CategoryMixed)[0])

	for _, c := range Categories {
		assert.Len(t, Pool(c), 15, "category %s", c)
	}
}
