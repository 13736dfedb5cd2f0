package configs

// Referral configures referral code generation.
type Referral struct {
	CodeLength int `env:"CODE_LENGTH" envDefault:"8"`
	// MaxAttempts bounds regeneration on collisions within a campaign.
	MaxAttempts int `env:"MAX_ATTEMPTS" envDefault:"16"`
}
