package models

import (
	"time"
)

// Role identifies what a user can see and do on the platform
type Role int

const (
	// RoleInfluencer is assigned to influencer accounts
	RoleInfluencer Role = 3
	// RoleStudent is assigned to every account created through mobile registration
	RoleStudent Role = 4
)

// IsValid reports whether the role is one the platform knows about
func (r Role) IsValid() bool {
	return r == RoleInfluencer || r == RoleStudent
}

// User represents a registered student or influencer
type User struct {
	ID         string    `json:"id" db:"id"`
	FirstName  string    `json:"firstName" db:"first_name"`
	LastName   string    `json:"lastName" db:"last_name"`
	Email      string    `json:"emailId" db:"email"`
	Mobile     string    `json:"mobileNo" db:"mobile"`
	State      string    `json:"state" db:"state"`
	District   string    `json:"district" db:"district"`
	City       string    `json:"city" db:"city"`
	Pincode    string    `json:"pincode" db:"pincode"`
	SchoolName string    `json:"schoolName,omitempty" db:"school_name"`
	SchoolID   string    `json:"schoolId,omitempty" db:"school_id"`
	AvatarURL  string    `json:"avatarUrl,omitempty" db:"avatar_url"`
	RoleID     Role      `json:"roleId" db:"role_id"`
	IsVerified bool      `json:"isVerified" db:"is_verified"`
	IsActive   bool      `json:"isActive" db:"is_active"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// FullName returns first and last name joined by a space
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// ProfileUpdate carries the fields a user may change on their profile.
// Nil fields are left untouched. Role, verification and activation are
// owned by the server and cannot be set here.
type ProfileUpdate struct {
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	Email      *string `json:"emailId,omitempty" validate:"omitempty,email"`
	State      *string `json:"state,omitempty"`
	District   *string `json:"district,omitempty"`
	City       *string `json:"city,omitempty"`
	Pincode    *string `json:"pincode,omitempty" validate:"omitempty,pincode"`
	SchoolName *string `json:"schoolName,omitempty"`
	SchoolID   *string `json:"schoolId,omitempty"`
	AvatarURL  *string `json:"avatarUrl,omitempty"`
}

// Apply merges the non-nil fields of the update onto the user
func (p ProfileUpdate) Apply(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.State != nil {
		u.State = *p.State
	}
	if p.District != nil {
		u.District = *p.District
	}
	if p.City != nil {
		u.City = *p.City
	}
	if p.Pincode != nil {
		u.Pincode = *p.Pincode
	}
	if p.SchoolName != nil {
		u.SchoolName = *p.SchoolName
	}
	if p.SchoolID != nil {
		u.SchoolID = *p.SchoolID
	}
	if p.AvatarURL != nil {
		u.AvatarURL = *p.AvatarURL
	}
}

// AvatarUploadRequest represents a request to replace the profile picture
type AvatarUploadRequest struct {
	AvatarURL string `json:"avatarUrl" validate:"required,url"`
}
