package service

import (
	"regexp"
	"time"

	apperrors "github.com/newsrack-dev/newsrack/internal/errors"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validateDate checks the YYYY-MM-DD issue date format used in storage
// keys and media store folder paths.
func validateDate(date string) error {
	if !datePattern.MatchString(date) {
		return &apperrors.ErrorWithStatusCode{Message: "date must be YYYY-MM-DD", StatusCode: 400}
	}
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return &apperrors.ErrorWithStatusCode{Message: "invalid date", StatusCode: 400}
	}
	return nil
}
