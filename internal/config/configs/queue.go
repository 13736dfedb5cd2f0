package configs

import "time"

// Queue configures the payout job queue and its consumers.
type Queue struct {
	// Prefix namespaces every Redis key used by the queue.
	Prefix string `env:"PREFIX" envDefault:"bounty:payouts"`
	// VisibilityTimeout is how long a dequeued job stays hidden before it
	// is redelivered.
	VisibilityTimeout time.Duration `env:"VISIBILITY_TIMEOUT" envDefault:"2m"`
	PollInterval      time.Duration `env:"POLL_INTERVAL" envDefault:"500ms"`
	Concurrency       int           `env:"CONCURRENCY" envDefault:"4"`
	// MaxAttempts bounds deliveries of a job failing transiently before it
	// is moved to the dead set.
	MaxAttempts    int           `env:"MAX_ATTEMPTS" envDefault:"8"`
	BackoffInitial time.Duration `env:"BACKOFF_INITIAL" envDefault:"2s"`
	BackoffMax     time.Duration `env:"BACKOFF_MAX" envDefault:"5m"`
	// OutboxInterval is the period of the outbox relay sweep.
	OutboxInterval time.Duration `env:"OUTBOX_INTERVAL" envDefault:"5s"`
	OutboxBatch    int           `env:"OUTBOX_BATCH" envDefault:"100"`
}
