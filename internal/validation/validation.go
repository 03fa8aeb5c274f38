package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ValidateRequired checks that a field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(fieldName + " is required")
	}
	return nil
}

// ValidateMaxLength checks the maximum length of a string
func ValidateMaxLength(value string, maxLength int, fieldName string) error {
	if utf8.RuneCountInString(value) > maxLength {
		return fmt.Errorf("%s must be at most %d characters long", fieldName, maxLength)
	}
	return nil
}

// ValidateUUID checks that a string is a valid UUID
func ValidateUUID(value, fieldName string) error {
	if _, err := uuid.Parse(value); err != nil {
		return errors.New(fieldName + " must be a valid UUID")
	}
	return nil
}

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errors.New("email must have a valid format")
	}
	return nil
}

// ValidatePositive checks that a numeric field is greater than zero
func ValidatePositive(value float64, fieldName string) error {
	if value <= 0 {
		return errors.New(fieldName + " must be positive")
	}
	return nil
}
