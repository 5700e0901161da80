package service

import (
	"time"

	"sommelier/internal/domain/entity"
)

// SyncMetrics records how drink counter updates behave after the owning write succeeded.
type SyncMetrics interface {
	// ObserveCounterUpdate records one attempt to apply a counter update to its drink.
	ObserveCounterUpdate(op entity.CounterOp, applied bool, elapsed time.Duration)

	// ObserveRepairEvent records one attempt to publish a repair request.
	ObserveRepairEvent(published bool)
}
