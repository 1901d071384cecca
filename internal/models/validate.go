package models

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

// ValidEmail reports whether email looks like local@domain.tld.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

func validateEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if !emailPattern.MatchString(email) {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return email, nil
}

func validateName(value, field string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", invalidValue(field, value, "a non-empty string")
	}
	return value, nil
}

func validatePositiveInt(value int, field string) (int, error) {
	if value <= 0 {
		return 0, invalidValue(field, value, "> 0")
	}
	return value, nil
}

func validateNonNegativeInt(value int, field string) (int, error) {
	if value < 0 {
		return 0, invalidValue(field, value, ">= 0")
	}
	return value, nil
}

func validatePositive(value float64, field string) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return 0, invalidValue(field, value, "> 0")
	}
	return value, nil
}

func validateNonNegative(value float64, field string) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, invalidValue(field, value, ">= 0")
	}
	return value, nil
}

func validateRange(value, lo, hi float64, field string) (float64, error) {
	if math.IsNaN(value) || value < lo || value > hi {
		return 0, invalidValue(field, value, fmt.Sprintf("between %g and %g", lo, hi))
	}
	return value, nil
}

func validateTimeOrder(start, end time.Time) error {
	if !end.After(start) {
		return fmt.Errorf("%w: start=%s end=%s", ErrInvalidTimeRange,
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return nil
}
