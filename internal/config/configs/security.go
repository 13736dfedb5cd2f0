package configs

// Security holds the shared secrets guarding inbound requests.
type Security struct {
	// WebhookSecret must be presented in X-Webhook-Secret by the referral
	// webhook caller.
	WebhookSecret string `env:"WEBHOOK_SECRET,required,notEmpty"`
	// AdminToken guards campaign administration routes. Admin routes are
	// disabled when empty.
	AdminToken string `env:"ADMIN_TOKEN"`
}
