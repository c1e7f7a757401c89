// File: services/payment/stripe.go
package payment

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// IntentCreator creates a payment intent for a booking and returns the
// client secret the frontend completes the payment with.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount float64, bookingID string) (string, error)
}

// StripeIntentCreator implements IntentCreator against Stripe.
// stripe.Key must be set before use (done at startup).
type StripeIntentCreator struct {
	Currency string
}

// NewStripeIntentCreator returns a creator charging in the given currency.
func NewStripeIntentCreator(currency string) *StripeIntentCreator {
	if currency == "" {
		currency = string(stripe.CurrencyEUR)
	}
	return &StripeIntentCreator{Currency: currency}
}

func (c *StripeIntentCreator) CreateIntent(ctx context.Context, amount float64, bookingID string) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("payment: amount must be positive")
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(c.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("bookingId", bookingID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("payment: failed to create intent: %w", err)
	}
	return pi.ClientSecret, nil
}
