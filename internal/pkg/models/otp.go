package models

// OTPType distinguishes a login OTP from a registration OTP
type OTPType string

const (
	OTPTypeLogin    OTPType = "login"
	OTPTypeRegister OTPType = "register"
)

// SendOTPRequest represents a request to send an OTP to a mobile number
type SendOTPRequest struct {
	Mobile string  `json:"mobileNo" validate:"required"`
	Type   OTPType `json:"type"`
}

// SendOTPResponse is returned once an OTP has been dispatched
type SendOTPResponse struct {
	Message   string `json:"message"`
	SMSHash   string `json:"smsHash"`
	ExpiresIn int    `json:"expiresIn"`
}

// VerifyOTPRequest represents a request to verify an OTP
type VerifyOTPRequest struct {
	Mobile string `json:"mobileNo" validate:"required"`
	OTP    string `json:"otp" validate:"required"`
}

// AuthTokens is the access/refresh token pair issued on login or refresh
type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// LoginResult represents the response after successful OTP verification
type LoginResult struct {
	User   User       `json:"user"`
	Tokens AuthTokens `json:"tokens"`
}

// RefreshTokenRequest represents a request to exchange a refresh token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// RegistrationRequest carries the student registration form
type RegistrationRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"emailId"`
	Mobile     string `json:"mobileNo"`
	State      string `json:"state"`
	District   string `json:"district"`
	City       string `json:"city"`
	Pincode    string `json:"pincode"`
	SchoolName string `json:"schoolName"`
	SchoolID   string `json:"schoolId"`
	PromoCode  string `json:"promoCode"`
}
