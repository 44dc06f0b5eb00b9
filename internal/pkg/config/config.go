package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments (port, DB credentials)
// - default: values shared across environments (timeouts, page sizes)
// Each service binary loads only its own section set.
// -----------------------------------------------------------------------------

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

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-User-Name"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// UpstreamConfig holds the downstream service endpoints used by the gateway.
// Timeout bounds every downstream call; expiry is treated the same as a
// non-2xx response.
type UpstreamConfig struct {
	FlightBaseURL string        `envconfig:"FLIGHT_SERVICE_URL" required:"true"`
	TicketBaseURL string        `envconfig:"TICKET_SERVICE_URL" required:"true"`
	BonusBaseURL  string        `envconfig:"BONUS_SERVICE_URL" required:"true"`
	Timeout       time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"5s"`
}

type GatewayConfig struct {
	Server   ServerConfig
	CORS     CORSConfig
	Log      LogConfig
	Upstream UpstreamConfig
}

type TicketConfig struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
}

type BonusConfig struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
}

type FlightConfig struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadGateway() (GatewayConfig, error) {
	var cfg GatewayConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return GatewayConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func LoadTicket() (TicketConfig, error) {
	var cfg TicketConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return TicketConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func LoadBonus() (BonusConfig, error) {
	var cfg BonusConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return BonusConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func LoadFlight() (FlightConfig, error) {
	var cfg FlightConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return FlightConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}
