package models

import "time"

// Notification types
const (
	NotificationWelcome      = "welcome"
	NotificationEvent        = "event"
	NotificationVideo        = "video"
	NotificationSubscription = "subscription"
)

// Notification belongs to a user
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
