package components

import (
	"log/slog"

	"cineseat/internal/infra/notify"
	"cineseat/internal/infra/postgres"
	"cineseat/internal/inventory"
	"cineseat/internal/pkg/config"
	"cineseat/internal/usecase/commands"
	"cineseat/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			postgres.NewShowtimeRepository,
			fx.As(new(commands.ShowtimeRepository)),
			fx.As(new(queries.ShowtimeCatalog)),
			fx.As(new(inventory.Catalog)),
		),
		fx.Annotate(
			postgres.NewBookingLedger,
			fx.As(new(commands.BookingLedger)),
		),
		fx.Annotate(
			NewNotifier,
			fx.As(new(commands.NotificationPublisher)),
		),
	),
)

func NewNotifier(cfg config.Config, logger *slog.Logger) *notify.AMQPPublisher {
	return notify.NewAMQPPublisher(cfg.AMQP, logger)
}
