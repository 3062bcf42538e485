package components

import (
	"workspace-rental/internal/handler"
	"workspace-rental/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWorkspaceHandler,
		api.NewEquipmentHandler,
		api.NewRentalHandler,
		api.NewLedgerHandler,
	),
	fx.Invoke(handler.NewRouter),
)
