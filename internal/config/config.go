package config

import (
	"booking-settlement-api/internal/ledger"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const defaultPath = "config/config.toml"

// Duration reads Go duration strings such as "15m" from TOML.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(v)

	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type Config struct {
	Server     ServerConfig                  `toml:"server"`
	Postgres   PostgresConfig                `toml:"postgres"`
	RabbitMQ   RabbitMQConfig                `toml:"rabbitmq"`
	Auction    AuctionConfig                 `toml:"auction"`
	Outbox     OutboxConfig                  `toml:"outbox"`
	Directory  DirectoryConfig               `toml:"directory"`
	PayoutFees map[string]ledger.FeeSchedule `toml:"payout_fees" validate:"dive,keys,oneof=bank_transfer paypal wire_transfer check,endkeys"`
	Auth       AuthConfig                    `toml:"auth"`
	Log        LogConfig                     `toml:"log"`
}

type ServerConfig struct {
	Address         string   `toml:"address" validate:"required"`
	ShutdownTimeout Duration `toml:"shutdown_timeout" validate:"gt=0"`
}

type PostgresConfig struct {
	Conn          string   `toml:"conn" validate:"required"`
	LockTimeout   Duration `toml:"lock_timeout" validate:"gte=0"`
	MigrationsDir string   `toml:"migrations_dir" validate:"required"`
}

type RabbitMQConfig struct {
	Enabled  bool   `toml:"enabled"`
	URL      string `toml:"url" validate:"required_if=Enabled true"`
	Exchange string `toml:"exchange" validate:"required_if=Enabled true"`
	Queue    string `toml:"queue" validate:"required_if=Enabled true"`
	Prefetch int    `toml:"prefetch" validate:"gte=0"`
}

type AuctionConfig struct {
	DefaultDuration Duration `toml:"default_duration" validate:"gt=0"`
	SweepInterval   Duration `toml:"sweep_interval" validate:"gt=0"`
	SweepBatch      int      `toml:"sweep_batch" validate:"gt=0"`
}

type OutboxConfig struct {
	RelayInterval Duration `toml:"relay_interval" validate:"gt=0"`
	Batch         int      `toml:"batch" validate:"gt=0"`
	MaxAttempts   int      `toml:"max_attempts" validate:"gt=0"`
}

type DirectoryConfig struct {
	CacheSize int `toml:"cache_size" validate:"gt=0"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret" validate:"required,min=16"`
}

type LogConfig struct {
	Level string `toml:"level" validate:"omitempty,oneof=DEBUG INFO WARN ERROR debug info warn error"`
}

func Default() *Config {
	return &Config{
		Server:   ServerConfig{Address: ":8080", ShutdownTimeout: Duration(30 * time.Second)},
		Postgres: PostgresConfig{LockTimeout: Duration(5 * time.Second), MigrationsDir: "migrations"},
		RabbitMQ: RabbitMQConfig{Exchange: "booking_topic", Queue: "booking_events", Prefetch: 10},
		Auction: AuctionConfig{
			DefaultDuration: Duration(15 * time.Minute),
			SweepInterval:   Duration(10 * time.Second),
			SweepBatch:      50,
		},
		Outbox:    OutboxConfig{RelayInterval: Duration(2 * time.Second), Batch: 100, MaxAttempts: 20},
		Directory: DirectoryConfig{CacheSize: 1024},
		PayoutFees: map[string]ledger.FeeSchedule{
			"bank_transfer": {Percent: 1},
			"paypal":        {Percent: 2.9, Flat: 30},
			"wire_transfer": {Flat: 2500},
			"check":         {Flat: 200},
		},
		Log: LogConfig{Level: "INFO"},
	}
}

// Load reads .env, then the TOML file at CONFIG_PATH (config/config.toml by
// default), then environment overrides, and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = defaultPath
	}

	cfg := Default()
	if err := cfg.decodeFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	if err = toml.NewDecoder(file).Decode(c); err != nil {
		return fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	return nil
}

func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"SERVER_ADDRESS": &c.Server.Address,
		"POSTGRES_CONN":  &c.Postgres.Conn,
		"RABBITMQ_URL":   &c.RabbitMQ.URL,
		"JWT_SECRET":     &c.Auth.JWTSecret,
		"LOG_LEVEL":      &c.Log.Level,
	}
	for env, field := range overrides {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			*field = v
		}
	}
	if os.Getenv("RABBITMQ_URL") != "" {
		c.RabbitMQ.Enabled = true
	}
}

func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
