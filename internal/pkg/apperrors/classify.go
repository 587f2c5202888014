package apperrors

import "strings"

// Classify derives a kind from a raw backend message. It is only consulted
// when a backend response carries no code, and returns "" when nothing matches.
func Classify(message string) Kind {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "email") && strings.Contains(lower, "already exists"):
		return KindDuplicateEmail
	case strings.Contains(lower, "mobile") && strings.Contains(lower, "already exists"):
		return KindDuplicateMobile
	case strings.Contains(message, "createdOn"),
		strings.Contains(message, "Timestamp"),
		strings.Contains(lower, "null"):
		return KindAccountData
	case strings.Contains(lower, "network"):
		return KindNetwork
	case strings.Contains(lower, "timeout"), strings.Contains(lower, "timed out"):
		return KindTimeout
	}
	return ""
}

// FromResponse rebuilds an *Error from the fields of a failed response envelope
func FromResponse(code, message string, status int) *Error {
	kind := ParseKind(code)
	if kind == "" {
		kind = Classify(message)
	}
	if kind == "" {
		kind = kindForStatus(status)
	}
	if message == "" {
		message = "Request failed"
	}
	return &Error{Kind: kind, Message: message, StatusCode: status}
}

func kindForStatus(status int) Kind {
	switch {
	case status == 401:
		return KindUnauthorized
	case status == 404:
		return KindNotFound
	case status == 408:
		return KindTimeout
	case status >= 400 && status < 500:
		return KindBadRequest
	default:
		return KindInternal
	}
}
