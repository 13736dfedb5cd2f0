package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"mesa-bounty/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// SnowflakeNode identifies this replica when minting campaign ids. It
	// must be unique across replicas.
	SnowflakeNode int64 `env:"SNOWFLAKE_NODE" envDefault:"1"`

	// WorkerEnabled runs the payout worker, outbox relay and expiry
	// scheduler in this process.
	WorkerEnabled bool `env:"WORKER_ENABLED" envDefault:"true"`

	HTTP       configs.HTTP       `envPrefix:"HTTP_"`
	Log        configs.Logger     `envPrefix:"LOG_"`
	Psql       configs.Postgres   `envPrefix:"PSQL_"`
	Redis      configs.Redis      `envPrefix:"REDIS_"`
	Queue      configs.Queue      `envPrefix:"QUEUE_"`
	Settlement configs.Settlement `envPrefix:"SETTLEMENT_"`
	Sweep      configs.Sweep      `envPrefix:"SWEEP_"`
	Security   configs.Security   `envPrefix:"SECURITY_"`
	Kafka      configs.Kafka      `envPrefix:"KAFKA_"`
	Referral   configs.Referral   `envPrefix:"REFERRAL_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, err := c.Sweep.Location(); err != nil {
		return err
	}
	if _, _, err := c.Sweep.Clock(); err != nil {
		return err
	}
	if c.Queue.Concurrency <= 0 {
		return fmt.Errorf("queue concurrency must be positive, got %d", c.Queue.Concurrency)
	}
	if c.Queue.MaxAttempts <= 0 {
		return fmt.Errorf("queue max attempts must be positive, got %d", c.Queue.MaxAttempts)
	}
	if c.SnowflakeNode < 0 || c.SnowflakeNode > 1023 {
		return fmt.Errorf("snowflake node must be within [0, 1023], got %d", c.SnowflakeNode)
	}
	return nil
}
