package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SECURITY_WEBHOOK_SECRET", "s3cret")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "s3cret", cfg.Security.WebhookSecret)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 8, cfg.Referral.CodeLength)
	assert.Equal(t, 2*time.Minute, cfg.Queue.VisibilityTimeout)

	h, m, err := cfg.Sweep.Clock()
	require.NoError(t, err)
	assert.Equal(t, 23, h)
	assert.Equal(t, 59, m)
}

func TestLoadRequiresWebhookSecret(t *testing.T) {
	t.Setenv("SECURITY_WEBHOOK_SECRET", "")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadSweepTime(t *testing.T) {
	t.Setenv("SECURITY_WEBHOOK_SECRET", "s3cret")
	t.Setenv("SWEEP_AT", "25:99")
	_, err := Load()
	assert.Error(t, err)
}
