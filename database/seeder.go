package database

import (
	"fmt"

	"github.com/evandrarf/mock-interview-be/internal/delivery/http/repository"
	"github.com/evandrarf/mock-interview-be/internal/pkg/mapper"
	"gorm.io/gorm"
)

// SeedQuestionBank mirrors the built-in question bank into question_bank_entries.
// Re-running it updates the text of existing rows in place.
func SeedQuestionBank(db *gorm.DB) error {
	entries := mapper.ToBankEntries()
	if err := repository.NewInterviewRepository(db).UpsertBankEntries(nil, entries); err != nil {
		return fmt.Errorf("failed to seed question bank: %w", err)
	}
	return nil
}
