package bootstrap

import (
	"log/slog"

	infrapayment "workspace-rental/internal/infra/payment"
	"workspace-rental/internal/pkg/config"
	"workspace-rental/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		NewPaymentGateway,
	),
)

func NewPaymentGateway(cfg config.Config) commands.PaymentGateway {
	switch cfg.Payment.Provider {
	case "stripe":
		return infrapayment.NewStripeGateway(cfg.Payment)
	default:
		slog.Info("using stub payment gateway", "provider", cfg.Payment.Provider)
		return infrapayment.NewStubGateway()
	}
}
