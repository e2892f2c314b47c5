package mapper

import (
	dbEntity "github.com/evandrarf/mock-interview-be/internal/entity"
	"github.com/evandrarf/mock-interview-be/internal/pkg/fallback"
)

// ToBankEntries - Convert the built-in bank into seedable rows, positions start at 1
func ToBankEntries() []dbEntity.QuestionBankEntry {
	entries := make([]dbEntity.QuestionBankEntry, 0)
	for _, category := range fallback.Categories {
		for i, text := range fallback.Pool(category) {
			entries = append(entries, dbEntity.QuestionBankEntry{
				Category:     string(category),
				Position:     i + 1,
				QuestionText: text,
			})
		}
	}
	return entries
}
