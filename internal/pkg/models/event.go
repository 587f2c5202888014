package models

import "time"

// Event represents a competition users can browse and submit videos to
type Event struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Category         string    `json:"category"`
	ImageURL         string    `json:"imageUrl,omitempty"`
	Prize            string    `json:"prize,omitempty"`
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	UploadStartDate  time.Time `json:"uploadStartDate"`
	UploadEndDate    time.Time `json:"uploadEndDate"`
	AllowedRoles     []Role    `json:"allowedRoles"`
	CanUpload        bool      `json:"canUpload"`
	ParticipantCount int       `json:"participantCount"`
	QuizID           string    `json:"quizId,omitempty"`
	Guidelines       []string  `json:"-"`
	Tags             []string  `json:"tags,omitempty"`
}

// AllowsRole reports whether users with the given role can see the event
func (e Event) AllowsRole(role Role) bool {
	for _, r := range e.AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}

// UploadOpen reports whether the event accepts submissions at the given time
func (e Event) UploadOpen(at time.Time) bool {
	if !e.CanUpload {
		return false
	}
	if !e.UploadStartDate.IsZero() && at.Before(e.UploadStartDate) {
		return false
	}
	if !e.UploadEndDate.IsZero() && at.After(e.UploadEndDate) {
		return false
	}
	return true
}

// EventFilter narrows an event listing
type EventFilter struct {
	Category string `json:"category" query:"category"`
	Search   string `json:"search" query:"search"`
}

// Event detail expansions
const (
	IncludeGuidelines = "guidelines"
	IncludeCategories = "categories"
	IncludeRelated    = "related"
)

// EventDetail is an event plus the expansions requested by the caller
type EventDetail struct {
	Event
	Guidelines []string `json:"guidelines,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Related    []Event  `json:"related,omitempty"`
}
