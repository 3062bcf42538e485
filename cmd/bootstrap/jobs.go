package bootstrap

import (
	"context"

	"workspace-rental/internal/infra/repository"
	"workspace-rental/internal/jobs"
	"workspace-rental/internal/pkg/clock"
	"workspace-rental/internal/pkg/config"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		func(repo *repository.WorkspaceRepository, clk clock.Clock, cfg config.Config) *jobs.Janitor {
			return jobs.NewJanitor(repo, clk, cfg.Janitor)
		},
	),
	fx.Invoke(startJanitor),
)

func startJanitor(lc fx.Lifecycle, janitor *jobs.Janitor) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return janitor.Start()
		},
		OnStop: func(_ context.Context) error {
			janitor.Stop()
			return nil
		},
	})
}
