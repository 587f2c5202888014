package validation

import (
	"regexp"
	"strings"
)

// InputKind selects the sanitizer applied by SanitizeInput
type InputKind string

const (
	InputName    InputKind = "name"
	InputEmail   InputKind = "email"
	InputPhone   InputKind = "phone"
	InputPincode InputKind = "pincode"
	InputGeneral InputKind = "general"
)

var (
	nameDisallowed    = regexp.MustCompile(`[^a-zA-Z\s'-]`)
	nonDigit          = regexp.MustCompile(`\D`)
	whitespace        = regexp.MustCompile(`\s`)
	generalDisallowed = regexp.MustCompile(`[<>]`)
)

// SanitizeInput strips characters the given kind of field does not allow.
// Phone numbers are truncated to 10 digits and pincodes to 6.
func SanitizeInput(value string, kind InputKind) string {
	switch kind {
	case InputName:
		return nameDisallowed.ReplaceAllString(value, "")
	case InputEmail:
		return strings.ToLower(whitespace.ReplaceAllString(value, ""))
	case InputPhone:
		return truncate(nonDigit.ReplaceAllString(value, ""), 10)
	case InputPincode:
		return truncate(nonDigit.ReplaceAllString(value, ""), 6)
	default:
		return strings.TrimSpace(generalDisallowed.ReplaceAllString(value, ""))
	}
}

// FormatPhoneNumber groups the digits of a phone number as 3-3-4
func FormatPhoneNumber(value string) string {
	digits := SanitizeInput(value, InputPhone)
	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 6:
		return digits[:3] + " " + digits[3:]
	default:
		return digits[:3] + " " + digits[3:6] + " " + digits[6:]
	}
}

// FormatPincode keeps at most the first 6 digits of a pincode
func FormatPincode(value string) string {
	return SanitizeInput(value, InputPincode)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
