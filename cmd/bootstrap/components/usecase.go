package components

import (
	"workspace-rental/internal/pkg/clock"
	"workspace-rental/internal/pkg/config"
	"workspace-rental/internal/usecase/commands"
	"workspace-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) commands.RentalPolicy {
		policy := commands.DefaultRentalPolicy()
		if cfg.Payment.Timeout > 0 {
			policy.PaymentTimeout = cfg.Payment.Timeout
		}
		if cfg.Payment.LedgerRetries > 0 {
			policy.LedgerRetries = cfg.Payment.LedgerRetries
		}
		return policy
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRentalCommands,
		commands.NewWorkspaceCommands,
		commands.NewEquipmentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewWorkspaceQueries,
		queries.NewEquipmentQueries,
		queries.NewLedgerQueries,
	),
)
