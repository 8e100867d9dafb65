package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is a normalized (trimmed, lower-cased) email address.
type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	normalized := NormalizeEmail(value)

	if normalized == "" {
		return Email{}, fmt.Errorf("email cannot be empty")
	}
	if len(normalized) > 255 {
		return Email{}, fmt.Errorf("email cannot exceed 255 characters")
	}
	if !emailRegex.MatchString(normalized) {
		return Email{}, fmt.Errorf("email must be a valid email address")
	}

	return Email{value: normalized}, nil
}

// NormalizeEmail applies the same normalization as NewEmail without validating.
func NormalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func (e Email) String() string {
	return e.value
}

func (e Email) Equals(other Email) bool {
	return e.value == other.value
}
