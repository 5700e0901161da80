package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"sommelier/config"
	"sommelier/internal/delivery"
	"sommelier/internal/delivery/worker/handler"
	"sommelier/internal/domain/constants"
	"sommelier/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

const (
	defaultGroupID     = "drink-counter-worker"
	maxDeliveryRetries = 3
	retryBackoff       = time.Second
)

// messageReader is the part of *kafka.Reader the consumer uses.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaConsumer reads repair events from the topic the kafka publisher writes to.
type kafkaConsumer struct {
	reader    messageReader
	processor *handler.RepairProcessor
	logger    *slog.Logger
	backoff   time.Duration
	done      chan struct{}
	stopOnce  sync.Once
}

// ConsumerParams holds dependencies for the Kafka consumer
type ConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Processor *handler.RepairProcessor
}

// NewKafkaConsumer creates the consumer when the kafka provider is configured. Any other provider
// delivers through /push and gets a consumer that returns immediately.
func NewKafkaConsumer(params ConsumerParams) delivery.Delivery {
	cfg := params.Cfg.PubSub
	if cfg == nil || cfg.Provider != constants.PubSubProviderKafka {
		return disabledConsumer{logger: params.Logger}
	}

	groupID := defaultGroupID
	if params.Cfg.Worker != nil && params.Cfg.Worker.KafkaGroupID != "" {
		groupID = params.Cfg.Worker.KafkaGroupID
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.TopicID,
		GroupID: groupID,
	})

	c := newKafkaConsumer(reader, params.Processor, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c
}

func newKafkaConsumer(reader messageReader, processor *handler.RepairProcessor, logger *slog.Logger) *kafkaConsumer {
	return &kafkaConsumer{
		reader:    reader,
		processor: processor,
		logger:    logger,
		backoff:   retryBackoff,
		done:      make(chan struct{}),
	}
}

// Serve fetches, processes and commits messages one at a time until stopped.
func (c *kafkaConsumer) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-c.done:
			cancel()
		case <-ctx.Done():
		}
	}()

	c.logger.Info("Starting Kafka repair consumer")
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Error("[Worker] Failed to fetch repair event", slog.Any("error", err))
			if !c.wait(ctx, c.backoff) {
				return nil
			}

			continue
		}

		c.handle(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Error("[Worker] Failed to commit repair event",
				slog.Int64("offset", msg.Offset),
				slog.Any("error", errors.WithStack(err)),
			)
		}
	}
}

// wait sleeps for d and reports false when ctx ended first.
func (c *kafkaConsumer) wait(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

// handle processes one message. Retryable failures are retried a few times in place; after that
// the message is committed and the update is left to the sweep.
func (c *kafkaConsumer) handle(ctx context.Context, msg kafka.Message) {
	var event service.CounterRepairEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		c.logger.Error("[Worker] Failed to parse repair event",
			slog.Int64("offset", msg.Offset),
			slog.Any("error", err),
		)

		return
	}

	requestID := ""
	for _, h := range msg.Headers {
		if h.Key == "request_id" {
			requestID = string(h.Value)
		}
	}

	for attempt := 1; ; attempt++ {
		err := c.processor.ProcessWithTracing(ctx, &event, requestID)
		if err == nil {
			return
		}

		retryable := handler.IsRetryable(err)
		c.logger.Warn("[Worker] Failed to replay counter update",
			slog.String("update_id", event.UpdateID),
			slog.Int("attempt", attempt),
			slog.Bool("retryable", retryable),
			slog.Any("error", err),
		)
		if !retryable || attempt >= maxDeliveryRetries {
			return
		}

		if !c.wait(ctx, c.backoff*time.Duration(attempt)) {
			return
		}
	}
}

func (c *kafkaConsumer) stop(context.Context) error {
	var err error
	c.stopOnce.Do(func() {
		close(c.done)
		err = c.reader.Close()
	})

	return errors.WithStack(err)
}

type disabledConsumer struct {
	logger *slog.Logger
}

func (d disabledConsumer) Serve(context.Context) error {
	d.logger.Debug("Kafka repair consumer disabled")

	return nil
}
