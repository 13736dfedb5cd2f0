package configs

import "time"

// Settlement configures the client of the external settlement network.
type Settlement struct {
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:9090"`
	Token   string `env:"TOKEN"`
	// Timeout bounds a single HTTP request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
	// ConfirmInterval and ConfirmTimeout drive polling of pending transfers.
	ConfirmInterval time.Duration `env:"CONFIRM_INTERVAL" envDefault:"2s"`
	ConfirmTimeout  time.Duration `env:"CONFIRM_TIMEOUT" envDefault:"90s"`
	// Lease is how long a worker owns a claimed settlement unit.
	Lease time.Duration `env:"LEASE" envDefault:"2m"`
}
