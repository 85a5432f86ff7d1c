package components

import (
	"context"
	"log/slog"
	"time"

	"cineseat/internal/inventory"
	"cineseat/internal/pkg/clock"
	"cineseat/internal/pkg/config"

	"go.uber.org/fx"
)

// EngineModule wires the in-memory reservation engine: the coordinator
// registry, its expiry sweep and the stream heartbeat.
var EngineModule = fx.Module("engine",
	fx.Provide(
		clock.NewRealClock,
		NewRegistry,
		NewExpiryScheduler,
	),
	fx.Invoke(
		RunExpiryScheduler,
		RunHeartbeat,
	),
)

func NewRegistry(catalog inventory.Catalog, clk clock.Clock, cfg config.Config, logger *slog.Logger) *inventory.Registry {
	return inventory.NewRegistry(catalog, clk, cfg.Booking.StreamBuffer, logger)
}

func NewExpiryScheduler(registry *inventory.Registry, clk clock.Clock, cfg config.Config, logger *slog.Logger) *inventory.ExpiryScheduler {
	return inventory.NewExpiryScheduler(registry, clk, cfg.Booking.SweepInterval, logger)
}

func RunExpiryScheduler(lc fx.Lifecycle, scheduler *inventory.ExpiryScheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			scheduler.Stop()
			return nil
		},
	})
}

// RunHeartbeat keeps idle event streams alive so proxies do not reap
// them between seat changes.
func RunHeartbeat(lc fx.Lifecycle, registry *inventory.Registry, cfg config.Config) {
	stop := make(chan struct{})
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(cfg.Booking.HeartbeatInterval)
				defer ticker.Stop()
				for {
					select {
					case <-stop:
						return
					case <-ticker.C:
						for _, coord := range registry.Coordinators() {
							coord.Heartbeat()
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			close(stop)
			<-done
			return nil
		},
	})
}
