package models

import "time"

// VideoStatus represents the review state of a submission
type VideoStatus string

const (
	VideoPending  VideoStatus = "pending"
	VideoApproved VideoStatus = "approved"
	VideoRejected VideoStatus = "rejected"
)

// VideoSubmission belongs to a user and an event
type VideoSubmission struct {
	ID           string      `json:"id"`
	UserID       string      `json:"userId"`
	EventID      string      `json:"eventId"`
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	VideoURL     string      `json:"videoUrl"`
	ThumbnailURL string      `json:"thumbnailUrl,omitempty"`
	Status       VideoStatus `json:"status"`
	Views        int         `json:"views"`
	Likes        int         `json:"likes"`
	SubmittedAt  time.Time   `json:"submittedAt"`
}

// VideoUploadRequest represents a video submission to an event
type VideoUploadRequest struct {
	EventID      string `json:"eventId" validate:"required"`
	UserID       string `json:"userId"`
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	VideoURL     string `json:"videoUrl" validate:"required"`
	ThumbnailURL string `json:"thumbnailUrl"`
}
