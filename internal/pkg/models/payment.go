package models

import "time"

// PaymentMethod is a static catalog entry offered at checkout
type PaymentMethod struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	IsEnabled bool   `json:"isEnabled"`
}

// PaymentRequest represents a request to pay for a subscription
type PaymentRequest struct {
	SubscriptionID  string  `json:"subscriptionId" validate:"required"`
	Amount          float64 `json:"amount" validate:"gt=0"`
	PaymentMethodID string  `json:"paymentMethodId" validate:"required"`
}

// PaymentStatus represents the outcome of a payment
type PaymentStatus string

const (
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

// PaymentResult is returned after a payment has been processed
type PaymentResult struct {
	TransactionID string        `json:"transactionId"`
	Status        PaymentStatus `json:"status"`
	Amount        float64       `json:"amount"`
	Subscription  Subscription  `json:"subscription"`
	ProcessedAt   time.Time     `json:"processedAt"`
}
