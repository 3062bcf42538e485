package payment

import (
	"context"
	"log/slog"

	"workspace-rental/internal/domain/payment"
)

// StubGateway approves every authorization. Used in development and tests
// where no payment provider is configured.
type StubGateway struct{}

func NewStubGateway() *StubGateway {
	return &StubGateway{}
}

func (g *StubGateway) Authorize(_ context.Context, amount float64, _ payment.PaymentInfo) error {
	slog.Debug("stub payment gateway approved charge", "amount", amount)
	return nil
}
