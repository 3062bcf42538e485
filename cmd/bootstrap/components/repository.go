package components

import (
	"workspace-rental/internal/infra/repository"
	"workspace-rental/internal/pkg/config"
	"workspace-rental/internal/usecase/commands"
	"workspace-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		func(cfg config.Config) config.DBConfig { return cfg.DB },

		repository.NewWorkspaceRepository,
		repository.NewEquipmentRepository,
		repository.NewLedgerRepository,

		// Write-side bindings
		func(r *repository.WorkspaceRepository) commands.WorkspaceRepository { return r },
		func(r *repository.EquipmentRepository) commands.EquipmentRepository { return r },
		func(r *repository.LedgerRepository) commands.LedgerRepository { return r },

		// Read-side bindings; the same repositories back both sides.
		func(r *repository.WorkspaceRepository) queries.WorkspaceReadStore { return r },
		func(r *repository.EquipmentRepository) queries.EquipmentReadStore { return r },
		func(r *repository.LedgerRepository) queries.LedgerReadStore { return r },
	),
)
