package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"sommelier/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaPublisher implements EventPublisher on a Kafka topic. Messages are keyed by drink id so the
// repairs of one drink land on one partition in publish order.
type kafkaPublisher struct {
	writer messageWriter
	topic  string
	logger *slog.Logger
}

// NewKafkaPublisher creates a synchronous Kafka publisher that waits for all in-sync replicas.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
	}

	logger.Info("Kafka publisher initialized",
		slog.Any("brokers", brokers),
		slog.String("topic", topic),
	)

	return &kafkaPublisher{writer: w, topic: topic, logger: logger}
}

// PublishCounterRepairEvent writes the event to the topic
func (p *kafkaPublisher) PublishCounterRepairEvent(ctx context.Context, event *service.CounterRepairEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := kafka.Message{
		Key:   []byte(event.DrinkID),
		Value: data,
	}
	for k, v := range eventAttributes(event) {
		msg.Headers = append(msg.Headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrapf(err, "publish repair event to %s", p.topic)
	}

	p.logger.Debug("[Kafka] Repair event published",
		slog.String("topic", p.topic),
		slog.String("update_id", event.UpdateID),
	)

	return nil
}

// Close flushes pending messages and closes the writer
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
