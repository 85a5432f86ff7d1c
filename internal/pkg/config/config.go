package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (TTLs, intervals, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	AMQP    AMQPConfig
	CORS    CORSConfig
	Log     LogConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

// RedisConfig drives the token-bucket rate limiter on the seat-mutation
// routes. Leaving Addr empty disables limiting entirely.
type RedisConfig struct {
	Addr          string        `envconfig:"REDIS_ADDR" default:""`
	Password      string        `envconfig:"REDIS_PASSWORD" default:""`
	DB            int           `envconfig:"REDIS_DB" default:"0"`
	RateCapacity  int           `envconfig:"RATE_LIMIT_CAPACITY" default:"20"`
	RateRefill    int           `envconfig:"RATE_LIMIT_REFILL_TOKENS" default:"10"`
	RateInterval  time.Duration `envconfig:"RATE_LIMIT_REFILL_INTERVAL" default:"1s"`
	RateBucketTTL time.Duration `envconfig:"RATE_LIMIT_BUCKET_TTL" default:"10m"`
}

// AMQPConfig configures the booking.confirmed notification publisher.
// Leaving URL empty disables publishing.
type AMQPConfig struct {
	URL   string `envconfig:"AMQP_URL" default:""`
	Queue string `envconfig:"AMQP_BOOKING_QUEUE" default:"booking.confirmed"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// BookingConfig holds the reservation engine's timing and shape knobs.
type BookingConfig struct {
	SessionTTL        time.Duration `envconfig:"BOOKING_SESSION_TTL" default:"15m"`
	SeatTTL           time.Duration `envconfig:"BOOKING_SEAT_TTL" default:"5m"`
	SweepInterval     time.Duration `envconfig:"BOOKING_SWEEP_INTERVAL" default:"1s"`
	HeartbeatInterval time.Duration `envconfig:"BOOKING_HEARTBEAT_INTERVAL" default:"15s"`
	StreamBuffer      int           `envconfig:"BOOKING_STREAM_BUFFER" default:"64"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Booking: BookingConfig{
			SessionTTL:        15 * time.Minute,
			SeatTTL:           5 * time.Minute,
			SweepInterval:     50 * time.Millisecond,
			HeartbeatInterval: time.Second,
			StreamBuffer:      16,
		},
	}
}
