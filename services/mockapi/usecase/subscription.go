package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jackmarvels/platform/internal/pkg/apperrors"
	"github.com/jackmarvels/platform/internal/pkg/logger"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/internal/pkg/nsq"
)

// InsufficientFundsThreshold is the amount above which the mock payment
// processor declines
const InsufficientFundsThreshold = 1000

const (
	subscriptionCurrency = "INR"
	subscriptionTerm     = 365 * 24 * time.Hour
)

// CreateSubscription starts a pending subscription for the user
func (u *MockAPIUC) CreateSubscription(ctx context.Context, req models.CreateSubscriptionRequest) (models.Subscription, error) {
	if err := u.wait(ctx); err != nil {
		return models.Subscription{}, err
	}

	if !req.Plan.IsValid() {
		return models.Subscription{}, apperrors.Validation("Plan must be one of [free premium]")
	}
	if _, ok := u.store.FindUserByID(req.UserID); !ok {
		return models.Subscription{}, apperrors.NotFound("User")
	}

	now := u.now()
	sub := u.store.AddSubscription(models.Subscription{
		UserID:    req.UserID,
		Plan:      req.Plan,
		Status:    models.SubscriptionPending,
		Amount:    req.Amount,
		Currency:  subscriptionCurrency,
		StartDate: now,
		EndDate:   now.Add(subscriptionTerm),
	})

	logger.Info("Subscription created",
		logger.String("subscription_id", sub.ID),
		logger.UserID(sub.UserID),
		logger.String("plan", string(sub.Plan)))
	return sub, nil
}

// GetSubscription returns the user's current subscription
func (u *MockAPIUC) GetSubscription(ctx context.Context, userID string) (models.Subscription, error) {
	if err := u.wait(ctx); err != nil {
		return models.Subscription{}, err
	}

	sub, ok := u.store.FindSubscriptionByUserID(userID)
	if !ok {
		return models.Subscription{}, apperrors.NotFound("Subscription")
	}
	return sub, nil
}

// UpdateSubscription changes the plan of the user's current subscription.
// The subscription returns to pending until it is paid for.
func (u *MockAPIUC) UpdateSubscription(ctx context.Context, userID string, req models.SubscriptionUpdateRequest) (models.Subscription, error) {
	if err := u.wait(ctx); err != nil {
		return models.Subscription{}, err
	}

	if !req.Plan.IsValid() {
		return models.Subscription{}, apperrors.Validation("Plan must be one of [free premium]")
	}
	current, ok := u.store.FindSubscriptionByUserID(userID)
	if !ok {
		return models.Subscription{}, apperrors.NotFound("Subscription")
	}

	sub, ok := u.store.UpdateSubscription(current.ID, func(s *models.Subscription) {
		s.Plan = req.Plan
		s.Amount = req.Amount
		s.Status = models.SubscriptionPending
		s.TransactionID = ""
	})
	if !ok {
		return models.Subscription{}, apperrors.NotFound("Subscription")
	}
	return sub, nil
}

// GetPaymentMethods returns the payment method catalog
func (u *MockAPIUC) GetPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	if err := u.wait(ctx); err != nil {
		return nil, err
	}
	return u.store.PaymentMethods(), nil
}

// ProcessPayment pays for a subscription and activates it
func (u *MockAPIUC) ProcessPayment(ctx context.Context, userID string, req models.PaymentRequest) (models.PaymentResult, error) {
	if err := u.wait(ctx); err != nil {
		return models.PaymentResult{}, err
	}

	if req.Amount > InsufficientFundsThreshold {
		logger.Warn("Payment declined",
			logger.String("subscription_id", req.SubscriptionID),
			logger.Float64("amount", req.Amount))
		return models.PaymentResult{}, apperrors.New(apperrors.KindInsufficientFunds, "Insufficient funds")
	}
	if req.Amount <= 0 {
		return models.PaymentResult{}, apperrors.Validation("Amount must be greater than 0")
	}

	current, ok := u.store.FindSubscriptionByID(req.SubscriptionID)
	if !ok || current.UserID != userID {
		return models.PaymentResult{}, apperrors.NotFound("Subscription")
	}
	method, ok := u.store.FindPaymentMethodByID(req.PaymentMethodID)
	if !ok || !method.IsEnabled {
		return models.PaymentResult{}, apperrors.New(apperrors.KindPaymentMethod, "Payment method not available")
	}

	transactionID := u.ids.NewID("txn")
	sub, ok := u.store.UpdateSubscription(current.ID, func(s *models.Subscription) {
		s.Status = models.SubscriptionActive
		s.TransactionID = transactionID
		s.PaymentMethod = method.ID
		s.Amount = req.Amount
	})
	if !ok {
		return models.PaymentResult{}, apperrors.NotFound("Subscription")
	}

	u.store.AddNotification(models.Notification{
		UserID:  sub.UserID,
		Title:   "Subscription active",
		Message: fmt.Sprintf("Your %s plan is now active.", sub.Plan),
		Type:    models.NotificationSubscription,
	})
	u.publish(ctx, nsq.TopicSubscriptionActivated, sub)

	logger.Info("Payment processed",
		logger.String("transaction_id", transactionID),
		logger.String("subscription_id", sub.ID))

	return models.PaymentResult{
		TransactionID: transactionID,
		Status:        models.PaymentSuccess,
		Amount:        req.Amount,
		Subscription:  sub,
		ProcessedAt:   u.now(),
	}, nil
}
