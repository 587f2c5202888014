// Package validation holds the side-effect-free field checks, sanitizers and
// formatters used by registration and profile forms. A check returns "" when
// the value is valid and a human-readable message otherwise.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	namePattern     = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobilePattern   = regexp.MustCompile(`^[6-9]\d{9}$`)
	pincodePattern  = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	locationPattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	schoolPattern   = regexp.MustCompile(`^[a-zA-Z0-9\s.'-]+$`)
	promoPattern    = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	otpPattern      = regexp.MustCompile(`^\d{6}$`)
)

// Rules describes the checks applied to a single field
type Rules struct {
	Required       bool
	MinLength      int
	MaxLength      int
	Pattern        *regexp.Regexp
	PatternMessage string
	Custom         func(value string) string
}

// ValidateField applies rules in order: required, min, max, pattern, custom.
// An empty value that is not required is valid.
func ValidateField(value, label string, rules Rules) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if rules.Required {
			return fmt.Sprintf("%s is required", label)
		}
		return ""
	}

	length := utf8.RuneCountInString(trimmed)
	if rules.MinLength > 0 && length < rules.MinLength {
		return fmt.Sprintf("%s must be at least %d characters", label, rules.MinLength)
	}
	if rules.MaxLength > 0 && length > rules.MaxLength {
		return fmt.Sprintf("%s must not exceed %d characters", label, rules.MaxLength)
	}

	if rules.Pattern != nil && !rules.Pattern.MatchString(trimmed) {
		if rules.PatternMessage != "" {
			return rules.PatternMessage
		}
		return fmt.Sprintf("%s is invalid", label)
	}

	if rules.Custom != nil {
		return rules.Custom(trimmed)
	}
	return ""
}
