package payment

import (
	"context"
	"math"

	"workspace-rental/internal/domain/payment"
	"workspace-rental/internal/pkg/config"
	"workspace-rental/internal/pkg/errs"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// StripeGateway authorizes charges by creating and immediately confirming
// a PaymentIntent. The engine treats any returned error as a declined
// authorization; distinguishing decline reasons is the caller's concern
// only insofar as the ledger records the attempt.
type StripeGateway struct {
	currency string
}

func NewStripeGateway(cfg config.PaymentConfig) *StripeGateway {
	stripe.Key = cfg.StripeKey
	return &StripeGateway{
		currency: cfg.Currency,
	}
}

func (g *StripeGateway) Authorize(ctx context.Context, amount float64, info payment.PaymentInfo) error {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Amount:                stripe.Int64(toMinorUnits(amount)),
		Currency:              stripe.String(g.currency),
		PaymentMethod:         stripe.String(info.Token),
		Confirm:               stripe.Bool(true),
		ErrorOnRequiresAction: stripe.Bool(true),
	}
	if info.CustomerEmail != "" {
		params.ReceiptEmail = stripe.String(info.CustomerEmail)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return errs.Wrap(err, "stripe payment intent failed")
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return errs.New("stripe payment intent not succeeded: " + string(pi.Status))
	}

	return nil
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
