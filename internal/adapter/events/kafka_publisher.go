// Package events publishes campaign domain events.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"mesa-bounty/internal/core/domain"
)

// envelope is the wire form of a domain event.
type envelope struct {
	Type       string         `json:"type"`
	CampaignID int64          `json:"campaignId"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// KafkaPublisher writes events to a single topic keyed by campaign id, so
// all events of one campaign land on one partition in order.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher requires at least one broker")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka publisher requires a topic")
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Balancer:     &kafka.Hash{},
		},
	}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, event domain.Event) error {
	msg, err := encode(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func encode(event domain.Event) (kafka.Message, error) {
	at := event.OccurredAt
	if at.IsZero() {
		at = time.Now()
	}
	value, err := json.Marshal(envelope{
		Type:       event.Type,
		CampaignID: event.CampaignID,
		Payload:    event.Payload,
		OccurredAt: at.UTC(),
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode event %s: %w", event.Type, err)
	}
	return kafka.Message{
		Key:   []byte(strconv.FormatInt(event.CampaignID, 10)),
		Value: value,
		Time:  at.UTC(),
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}, nil
}
