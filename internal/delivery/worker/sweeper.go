package worker

import (
	"context"
	"log/slog"
	"time"

	"sommelier/config"
	"sommelier/internal/delivery"
	"sommelier/internal/usecase"

	"go.uber.org/fx"
)

// sweeper replays pending counter updates on a fixed period. It picks up every update whose
// repair event was lost or never published.
type sweeper struct {
	interval  time.Duration
	logger    *slog.Logger
	reconcile usecase.ReconcileUsecase
	done      chan struct{}
}

// SweeperParams holds dependencies for the sweeper
type SweeperParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Reconcile usecase.ReconcileUsecase
}

// NewSweeper creates the periodic replay. A zero interval disables it.
func NewSweeper(params SweeperParams) delivery.Delivery {
	s := &sweeper{
		logger:    params.Logger,
		reconcile: params.Reconcile,
		done:      make(chan struct{}),
	}
	if params.Cfg.Worker != nil {
		s.interval = params.Cfg.Worker.ReplayInterval
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			close(s.done)

			return nil
		},
	})

	return s
}

// Serve blocks until ctx is canceled or the application stops.
func (s *sweeper) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info("Pending update sweep disabled")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-s.done:
			cancel()
		case <-ctx.Done():
		}
	}()

	s.logger.Info("Starting pending update sweep", slog.Duration("interval", s.interval))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sweeper) sweep(ctx context.Context) {
	result, err := s.reconcile.ReplayPending(ctx, 0)
	if err != nil {
		s.logger.Warn("Pending update sweep interrupted", slog.Any("error", err))

		return
	}
	if result.Scanned == 0 {
		return
	}

	s.logger.Info("Pending update sweep finished",
		slog.Int("scanned", result.Scanned),
		slog.Int("applied", result.Applied),
		slog.Int("failed", result.Failed),
	)
}
