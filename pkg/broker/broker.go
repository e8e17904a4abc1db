// Package broker publishes store domain events to Kafka.
package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Event is the envelope written to the store topic.
type Event struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	Key       string      `json:"-"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

func NewEvent(eventType, key string, payload interface{}) Event {
	return Event{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Key:       key,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// Publisher is what usecases depend on. A nil Publisher disables events.
type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
}

type Config struct {
	Brokers []string
	Topic   string
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducer struct {
	writer messageWriter
}

var _ Publisher = (*KafkaProducer)(nil)

func NewProducer(cfg *Config) *KafkaProducer {
	return &KafkaProducer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.Topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			BatchTimeout:           10 * time.Millisecond,
		},
	}
}

func (p *KafkaProducer) Publish(ctx context.Context, events ...Event) error {
	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		value, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", e.EventType, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.Key),
			Value: value,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(e.EventType)},
			},
		})
	}
	return p.writer.WriteMessages(ctx, msgs...)
}

func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
