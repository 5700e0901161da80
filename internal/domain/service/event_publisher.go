package service

import (
	"context"
)

// CounterRepairEvent asks the counter worker to apply a drink counter update that is still pending.
type CounterRepairEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	UpdateID  string `json:"update_id"`
	DrinkID   string `json:"drink_id"`
	Op        string `json:"op"`
	Reason    string `json:"reason,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCounterRepairEvent publishes a repair request for async processing
	PublishCounterRepairEvent(ctx context.Context, event *CounterRepairEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
