package validation

import (
	"strings"

	"github.com/jackmarvels/platform/internal/pkg/models"
)

// Result is the list-shaped outcome of ValidateRegistrationData
type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

type fieldCheck struct {
	field string
	check func(models.RegistrationRequest) string
}

// registrationChecks is ordered; callers rely on the order of messages.
var registrationChecks = []fieldCheck{
	{"firstName", func(r models.RegistrationRequest) string { return ValidateName(r.FirstName, "First name") }},
	{"lastName", func(r models.RegistrationRequest) string { return ValidateName(r.LastName, "Last name") }},
	{"emailId", func(r models.RegistrationRequest) string { return ValidateEmail(r.Email) }},
	{"mobileNo", func(r models.RegistrationRequest) string { return ValidateMobile(r.Mobile) }},
	{"state", func(r models.RegistrationRequest) string { return ValidateLocation(r.State, "State") }},
	{"district", func(r models.RegistrationRequest) string { return ValidateLocation(r.District, "District") }},
	{"city", func(r models.RegistrationRequest) string { return ValidateLocation(r.City, "City") }},
	{"pincode", func(r models.RegistrationRequest) string { return ValidatePincode(r.Pincode) }},
	{"schoolName", func(r models.RegistrationRequest) string { return ValidateSchoolName(r.SchoolName) }},
	{"promoCode", func(r models.RegistrationRequest) string { return ValidatePromoCode(r.PromoCode) }},
}

// ValidateRegistrationData runs every registration check and returns the
// failures as a flat, ordered list.
func ValidateRegistrationData(req models.RegistrationRequest) Result {
	errs := make([]string, 0)
	for _, fc := range registrationChecks {
		if msg := fc.check(req); msg != "" {
			errs = append(errs, msg)
		}
	}
	return Result{IsValid: len(errs) == 0, Errors: errs}
}

// ValidateRegistrationForm runs the same checks as ValidateRegistrationData
// but keys each failure by its JSON field name.
func ValidateRegistrationForm(req models.RegistrationRequest) map[string]string {
	errs := make(map[string]string)
	for _, fc := range registrationChecks {
		if msg := fc.check(req); msg != "" {
			errs[fc.field] = msg
		}
	}
	return errs
}

// IsFormReadyForSubmission reports whether the required fields are filled,
// a school has been selected and the whole form validates.
func IsFormReadyForSubmission(req models.RegistrationRequest) bool {
	required := []string{
		req.FirstName, req.LastName, req.Email, req.Mobile,
		req.State, req.District, req.City, req.Pincode,
	}
	hasRequired := true
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			hasRequired = false
			break
		}
	}

	hasSchool := strings.TrimSpace(req.SchoolID) != "" || strings.TrimSpace(req.SchoolName) != ""

	return hasRequired && hasSchool && len(ValidateRegistrationForm(req)) == 0
}
