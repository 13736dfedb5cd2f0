package configs

// Kafka configures the domain event publisher. Events are only logged when
// no brokers are set.
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"campaign-events"`
}
