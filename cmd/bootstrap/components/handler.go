package components

import (
	"log/slog"

	"cineseat/internal/handler"
	"cineseat/internal/handler/api"
	"cineseat/internal/handler/middleware"
	"cineseat/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSessionHandler,
		api.NewShowtimeHandler,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(cfg config.Config, rdb *redis.Client, logger *slog.Logger) gin.HandlerFunc {
	return middleware.NewRateLimiter(cfg.Redis, rdb, logger)
}
