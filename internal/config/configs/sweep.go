package configs

import (
	"fmt"
	"time"
)

// Sweep configures the daily campaign expiry sweep.
type Sweep struct {
	Enabled bool `env:"ENABLED" envDefault:"true"`
	// At is the wall clock time of day (HH:MM) the sweep runs.
	At       string        `env:"AT" envDefault:"23:59"`
	Timezone string        `env:"TIMEZONE" envDefault:"UTC"`
	LockTTL  time.Duration `env:"LOCK_TTL" envDefault:"5m"`
}

// Location resolves Timezone.
func (c Sweep) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("sweep timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Clock parses At into hour and minute.
func (c Sweep) Clock() (int, int, error) {
	t, err := time.Parse("15:04", c.At)
	if err != nil {
		return 0, 0, fmt.Errorf("sweep time %q: %w", c.At, err)
	}
	return t.Hour(), t.Minute(), nil
}
