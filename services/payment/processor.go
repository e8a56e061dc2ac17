package payment

import (
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// Processor creates payment intents with the upstream payment provider.
type Processor interface {
	// CreateIntent registers an intent for the given amount in minor
	// currency units and returns the client secret.
	CreateIntent(amountMinorUnits int64, currency string) (string, error)
}

// StripeProcessor implements Processor against the Stripe API. It relies on
// stripe.Key being set at startup.
type StripeProcessor struct{}

func (StripeProcessor) CreateIntent(amountMinorUnits int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinorUnits),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent failed: %w", err)
	}
	return intent.ClientSecret, nil
}
