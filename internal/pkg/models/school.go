package models

// School is an entry of the school directory offered during registration
type School struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode,omitempty"`
	Verified bool   `json:"verified"`
}
