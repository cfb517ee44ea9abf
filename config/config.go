package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Postgres struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"     default:"5432"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE" default:"UTC"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development" validate:"oneof=development staging production"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"10"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"15"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"NAME"     default:"frontdesk"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"   default:"100" validate:"gt=0"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"  validate:"gt=0"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"     default:"localhost"`
				Port     string `envconfig:"PORT"     default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		// TTL is how long, in seconds, the room grid, dashboard and reports are served from redis.
		TTL int `envconfig:"TTL" default:"60" validate:"gte=0"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"      validate:"required"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"     validate:"required,nefield=AccessSecret"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"  default:"15"   validate:"gt=0"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN" default:"1440" validate:"gt=0"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int      `envconfig:"MAX_RETRY"       default:"5"`
			RetryWaitTime  int      `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string   `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool     `envconfig:"AUTO_MIGRATE"`
			Prefix         string   `envconfig:"PREFIX"`
			Read           Postgres `envconfig:"READ"`
			Write          Postgres `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Enable        bool     `envconfig:"ENABLE"`
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topics struct {
			Booking string `envconfig:"BOOKING" default:"frontdesk.booking"`
		} `envconfig:"TOPICS"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	ErrKafkaBrokers  = errors.New("kafka is enabled without brokers")
	ErrWriteDatabase = errors.New("write database host and name are required")
)

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if write := c.DB.Postgres.Write; write.Host == "" || write.Name == "" {
		return ErrWriteDatabase
	}

	if c.Kafka.Enable && len(c.Kafka.Brokers) == 0 {
		return ErrKafkaBrokers
	}

	return nil
}

// Load reads the environment into a fresh Config without touching the process singleton.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment variables: %w", err)
	}

	return &cfg, nil
}

var (
	conf *Config
	once sync.Once
)

// Init loads .env when present, then the environment. Invalid configuration is fatal.
func Init() {
	once.Do(func() {
		err := godotenv.Load(".env")

		switch {
		case err == nil:
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		case errors.Is(err, fs.ErrNotExist):
			log.Warn().Msg("No .env file found, continuing with existing environment variables")
		default:
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		}

		cfg, err := Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		if err := cfg.Validate(); err != nil {
			log.Fatal().Err(err).Msg("Invalid service configuration")
		}

		conf = cfg

		log.Info().Str("env", conf.Server.Env).Msg("Service configuration initialized successfully")
	})
}

func Get() *Config {
	Init()

	return conf
}
