package models

import "time"

// Plan is a subscription tier
type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

// IsValid reports whether the plan is a known tier
func (p Plan) IsValid() bool {
	return p == PlanFree || p == PlanPremium
}

// SubscriptionStatus represents the lifecycle state of a subscription
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionPending   SubscriptionStatus = "pending"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Subscription belongs to exactly one user
type Subscription struct {
	ID            string             `json:"id"`
	UserID        string             `json:"userId"`
	Plan          Plan               `json:"plan"`
	Status        SubscriptionStatus `json:"status"`
	Amount        float64            `json:"amount"`
	Currency      string             `json:"currency"`
	StartDate     time.Time          `json:"startDate"`
	EndDate       time.Time          `json:"endDate"`
	TransactionID string             `json:"transactionId,omitempty"`
	PaymentMethod string             `json:"paymentMethod,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// CreateSubscriptionRequest starts a new pending subscription
type CreateSubscriptionRequest struct {
	UserID string  `json:"userId"`
	Plan   Plan    `json:"plan" validate:"required,oneof=free premium"`
	Amount float64 `json:"amount" validate:"gte=0"`
}

// SubscriptionUpdateRequest changes the plan of the caller's current subscription
type SubscriptionUpdateRequest struct {
	Plan   Plan    `json:"plan" validate:"required,oneof=free premium"`
	Amount float64 `json:"amount" validate:"gte=0"`
}
