package validation

import "fmt"

// ValidateName checks a first or last name
func ValidateName(value, label string) string {
	return ValidateField(value, label, Rules{
		Required:       true,
		MinLength:      2,
		MaxLength:      50,
		Pattern:        namePattern,
		PatternMessage: fmt.Sprintf("%s can only contain letters, spaces, hyphens and apostrophes", label),
	})
}

// ValidateEmail checks an email address
func ValidateEmail(value string) string {
	return ValidateField(value, "Email", Rules{
		Required:       true,
		MaxLength:      100,
		Pattern:        emailPattern,
		PatternMessage: "Please enter a valid email address",
	})
}

// ValidateMobile checks a 10-digit mobile number starting with 6-9
func ValidateMobile(value string) string {
	return ValidateField(value, "Mobile number", Rules{
		Required:       true,
		Pattern:        mobilePattern,
		PatternMessage: "Please enter a valid 10-digit mobile number starting with 6, 7, 8 or 9",
	})
}

// ValidatePincode checks a 6-digit pincode whose first digit is not zero
func ValidatePincode(value string) string {
	return ValidateField(value, "Pincode", Rules{
		Required:       true,
		Pattern:        pincodePattern,
		PatternMessage: "Please enter a valid 6-digit pincode",
	})
}

// ValidateLocation checks a state, district or city
func ValidateLocation(value, label string) string {
	return ValidateField(value, label, Rules{
		Required:       true,
		MinLength:      2,
		MaxLength:      50,
		Pattern:        locationPattern,
		PatternMessage: fmt.Sprintf("%s can only contain letters and spaces", label),
	})
}

// ValidateSchoolName checks a free-text school name. Selection of a school
// is enforced separately by IsFormReadyForSubmission.
func ValidateSchoolName(value string) string {
	return ValidateField(value, "School name", Rules{
		MinLength:      2,
		MaxLength:      100,
		Pattern:        schoolPattern,
		PatternMessage: "School name can only contain letters, numbers, spaces, dots, hyphens and apostrophes",
	})
}

// ValidatePromoCode checks an optional promo code
func ValidatePromoCode(value string) string {
	return ValidateField(value, "Promo code", Rules{
		MaxLength:      20,
		Pattern:        promoPattern,
		PatternMessage: "Promo code can only contain letters and numbers",
	})
}

// ValidateOTP checks a 6-digit one-time password
func ValidateOTP(value string) string {
	return ValidateField(value, "OTP", Rules{
		Required:       true,
		Pattern:        otpPattern,
		PatternMessage: "OTP must be 6 digits",
	})
}

// IsValidMobile reports whether value is an acceptable mobile number
func IsValidMobile(value string) bool {
	return mobilePattern.MatchString(value)
}

// IsValidPincode reports whether value is an acceptable pincode
func IsValidPincode(value string) bool {
	return pincodePattern.MatchString(value)
}

// IsValidOTP reports whether value has the shape of an OTP
func IsValidOTP(value string) bool {
	return otpPattern.MatchString(value)
}

// ValidatePhoneRealtime validates a mobile number while it is being typed.
// The pattern error is withheld until exactly 10 digits have been entered.
func ValidatePhoneRealtime(value string) string {
	digits := SanitizeInput(value, InputPhone)
	if len(digits) < 10 {
		return ""
	}
	return ValidateMobile(digits)
}
