package bootstrap

import (
	"cineseat/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	components.RepositoryModule,
	components.EngineModule,
	components.UseCaseModule,
	components.HandlerModule,
)
