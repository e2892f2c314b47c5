package usecase

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrInterviewNotFound  = errors.New("interview not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrReportNotFound     = errors.New("report not generated yet")
	ErrInterviewClosed    = errors.New("interview is no longer in progress")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// notFound maps gorm's missing-row error onto sentinel and passes anything else through.
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
