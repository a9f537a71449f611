package services

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// PaymentStatusSucceeded is the provider status required before a booking
// may be committed.
const PaymentStatusSucceeded = "succeeded"

// Payment is a captured payment record as reported by the provider. Amount
// is in minor currency units (x100 of the human-facing price).
type Payment struct {
	ID     string
	Status string
	Amount int64
}

// PaymentIntent is a freshly created payment the client can complete using
// the client secret.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentGateway is the payment collaborator consumed by the booking engine.
type PaymentGateway interface {
	RetrievePayment(ctx context.Context, id string) (*Payment, error)
	CreatePaymentIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*PaymentIntent, error)
}

// StripeGateway implements PaymentGateway against the Stripe API.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &StripeGateway{api: sc}
}

func (g *StripeGateway) RetrievePayment(ctx context.Context, id string) (*Payment, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	}
	pi, err := g.api.PaymentIntents.Get(id, params)
	if err != nil {
		if stripeErr, ok := err.(*stripe.Error); ok && stripeErr.Type == stripe.ErrorTypeInvalidRequest {
			// unknown or malformed payment intent id
			return nil, fmt.Errorf("%w: %s", ErrPaymentInvalid, stripeErr.Msg)
		}
		return nil, fmt.Errorf("%w: %v", ErrPaymentUnavailable, err)
	}
	return &Payment{
		ID:     pi.ID,
		Status: string(pi.Status),
		Amount: pi.Amount,
	}, nil
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentUnavailable, err)
	}
	return &PaymentIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
