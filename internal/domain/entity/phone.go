package entity

import (
	"regexp"
	"strings"
)

// phonePattern accepts +7 followed by ten digits, optionally grouped as
// "+7 (999) 123-45-67", "+7 999 123 45 67" or "+79991234567".
var phonePattern = regexp.MustCompile(`^\+7\s?\(?\d{3}\)?\s?\d{3}[\s-]?\d{2}[\s-]?\d{2}$`)

// ValidatePhone reports whether phone matches the accepted format.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(strings.TrimSpace(phone))
}
