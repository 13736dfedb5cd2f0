package events

import (
	"context"
	"log/slog"

	"mesa-bounty/internal/core/domain"
)

// LogPublisher writes events to the log. It is used when no brokers are
// configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event domain.Event) error {
	p.logger.LogAttrs(ctx, slog.LevelInfo, "domain event",
		slog.String("event_type", event.Type),
		slog.Int64("campaign_id", event.CampaignID),
		slog.Any("payload", event.Payload),
	)
	return nil
}
