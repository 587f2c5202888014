package apperrors

// User-facing copy for kinds that are remapped before reaching the user
const (
	MessageDuplicateEmail  = "An account with this email already exists. Please use a different email or login."
	MessageDuplicateMobile = "An account with this mobile number already exists. Please login instead."
	MessageAccountData     = "Account data error. Please contact support or try again later."
	MessageNetwork         = "Network error. Please check your internet connection and try again."
	MessageTimeout         = "Request timed out. Please try again."
)

var friendlyMessages = map[Kind]string{
	KindDuplicateEmail:  MessageDuplicateEmail,
	KindDuplicateMobile: MessageDuplicateMobile,
	KindAccountData:     MessageAccountData,
	KindNetwork:         MessageNetwork,
	KindTimeout:         MessageTimeout,
}

// FriendlyMessage returns the user-facing message for err.
// Kinds without fixed copy pass the original message through unchanged.
func FriendlyMessage(err error) string {
	if err == nil {
		return ""
	}
	appErr, ok := As(err)
	if !ok {
		return err.Error()
	}
	if msg, ok := friendlyMessages[appErr.Kind]; ok {
		return msg
	}
	return appErr.Message
}

// Friendly returns a copy of err with user-facing copy and the status code
// the client contract expects for its kind.
func Friendly(err error) *Error {
	appErr := From(err)
	if appErr == nil {
		return nil
	}
	msg, ok := friendlyMessages[appErr.Kind]
	if !ok {
		return appErr
	}
	clone := *appErr
	clone.Message = msg
	switch appErr.Kind {
	case KindNetwork, KindTimeout:
		clone.StatusCode = appErr.Kind.Status()
	}
	return &clone
}
