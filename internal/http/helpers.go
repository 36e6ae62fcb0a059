package http

import (
	"errors"
	"strings"
	"time"

	"fintrack/internal/core"
)

// parseFormDate reads an entry-form date. An empty value defaults to
// today, matching the form's prefilled value.
func parseFormDate(value string) (core.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		now := time.Now()
		return core.NewDate(now.Year(), int(now.Month()), now.Day()), nil
	}
	return core.ParseDate(value)
}

// sanitizeInput trims whitespace and strips control characters apart
// from tab and newlines.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// validationMessage picks the inline form message for the sentinel
// that failed validation.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidDate):
		return "Please enter a valid date."
	case errors.Is(err, core.ErrInvalidAmount):
		return "Please enter an amount greater than zero."
	case errors.Is(err, core.ErrEmptySource):
		return "Please enter an income source."
	case errors.Is(err, core.ErrEmptyItem):
		return "Please enter an item or description."
	case errors.Is(err, core.ErrUnknownCategory):
		return "Please choose a category from the list."
	case errors.Is(err, core.ErrTextTooLong):
		return "Please keep the description under 200 characters."
	default:
		return "Invalid data: " + err.Error()
	}
}

// today returns the current date in form-input format.
func today() string {
	return time.Now().Format("2006-01-02")
}
