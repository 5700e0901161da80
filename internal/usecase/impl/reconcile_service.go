package impl

import (
	"context"
	"log/slog"

	"sommelier/config"
	deliverycontext "sommelier/internal/delivery/context"
	"sommelier/internal/domain/entity"
	"sommelier/internal/domain/repository"
	"sommelier/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultReplayBatchSize = 100

// reconcileService implements the ReconcileUsecase interface.
type reconcileService struct {
	txManager  repository.TransactionManager
	updateRepo repository.CounterUpdateRepository
	drinks     usecase.DrinkUsecase
	batchSize  int
	logger     *slog.Logger
}

// ReconcileServiceParams holds dependencies for ReconcileService, injected by Fx.
type ReconcileServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UpdateRepo   repository.CounterUpdateRepository
	DrinkUsecase usecase.DrinkUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// NewReconcileService is the constructor for reconcileService.
func NewReconcileService(params ReconcileServiceParams) usecase.ReconcileUsecase {
	batchSize := defaultReplayBatchSize
	if params.Config != nil && params.Config.Worker != nil && params.Config.Worker.ReplayBatchSize > 0 {
		batchSize = params.Config.Worker.ReplayBatchSize
	}

	return &reconcileService{
		txManager:  params.TxManager,
		updateRepo: params.UpdateRepo,
		drinks:     params.DrinkUsecase,
		batchSize:  batchSize,
		logger:     params.Logger,
	}
}

func (srv *reconcileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ReplayPending applies pending updates oldest first. Each update runs in its own transaction,
// so one failing drink does not hold back the others.
func (srv *reconcileService) ReplayPending(ctx context.Context, limit int) (*usecase.ReplayResult, error) {
	if limit <= 0 || limit > srv.batchSize {
		limit = srv.batchSize
	}

	pending, err := srv.updateRepo.FindPending(ctx, limit)
	if err != nil {
		return nil, mapRepoError(err, "failed to list pending counter updates")
	}

	result := &usecase.ReplayResult{Scanned: len(pending)}
	for _, update := range pending {
		if ctx.Err() != nil {
			break
		}
		if _, err := srv.drinks.ApplyCounterUpdate(ctx, update.ID); err != nil {
			result.Failed++
			srv.log(ctx).Warn("Replay of counter update failed",
				slog.String("update_id", update.ID.String()),
				slog.String("drink_id", update.DrinkID.String()),
				slog.Any("error", err),
			)

			continue
		}
		result.Applied++
	}

	if result.Scanned > 0 {
		srv.log(ctx).Info("Replayed pending counter updates",
			slog.Int("scanned", result.Scanned),
			slog.Int("applied", result.Applied),
			slog.Int("failed", result.Failed),
		)
	}

	return result, ctx.Err()
}

// ReplayUpdate applies a single update. Already applied updates are a no-op.
func (srv *reconcileService) ReplayUpdate(ctx context.Context, updateID uuid.UUID) error {
	_, err := srv.drinks.ApplyCounterUpdate(ctx, updateID)

	return err
}

// PendingForDrink lists the updates a drink is still missing, oldest first.
func (srv *reconcileService) PendingForDrink(ctx context.Context, drinkID uuid.UUID) ([]*entity.CounterUpdate, error) {
	pending, err := srv.updateRepo.FindPendingByDrink(ctx, drinkID)
	if err != nil {
		return nil, mapRepoError(err, "failed to list pending counter updates")
	}

	return pending, nil
}

// RecountDrink rebuilds a drink's counters from the stored reviews and wishes and settles its pending updates.
func (srv *reconcileService) RecountDrink(ctx context.Context, drinkID uuid.UUID) (*entity.Drink, error) {
	var recounted *entity.Drink
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		drinkRepo := repoFactory.NewDrinkRepository()

		drink, err := drinkRepo.FindByIDForUpdate(ctx, drinkID)
		if err != nil {
			return mapRepoError(err, "failed to lock drink")
		}

		summary, err := repoFactory.NewReviewRepository().Summarize(ctx, drinkID)
		if err != nil {
			return mapRepoError(err, "failed to summarize reviews")
		}
		wishes, err := repoFactory.NewWishRepository().CountByDrink(ctx, drinkID)
		if err != nil {
			return mapRepoError(err, "failed to count wishes")
		}

		drink.Recount(summary, wishes)
		if err := drinkRepo.Update(ctx, drink); err != nil {
			return mapRepoError(err, "failed to update drink counters")
		}

		// The recount already includes every stored review and wish
		if err := settlePending(ctx, repoFactory.NewCounterUpdateRepository(), drinkID); err != nil {
			return err
		}
		recounted = drink

		return nil
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Drink recounted",
		slog.String("drink_id", drinkID.String()),
		slog.Int("reviews", recounted.NumOfReviews),
		slog.Int("wishes", recounted.NumOfWish),
	)

	return recounted, nil
}
