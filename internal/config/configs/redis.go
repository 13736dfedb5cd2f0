package configs

// Redis configures the connection backing the payout queue and the sweep
// lock.
type Redis struct {
	Addr string `env:"ADDRESS" envDefault:"redis://localhost:6379/0"`
	// InMemory selects the in-process queue and lock, only suitable for a
	// single replica.
	InMemory bool `env:"IN_MEMORY" envDefault:"false"`
}
