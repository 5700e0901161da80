package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "sommelier/internal/delivery/context"
	"sommelier/internal/domain/entity"
	domainerrors "sommelier/internal/domain/errors"
	"sommelier/internal/domain/repository"
	"sommelier/internal/domain/service"
	"sommelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// markFailedTimeout bounds the bookkeeping write that records a failed counter update.
const markFailedTimeout = 2 * time.Second

// drinkService implements the DrinkUsecase interface.
type drinkService struct {
	txManager repository.TransactionManager
	drinkRepo repository.DrinkRepository
	idGen     service.IDGenerator
	qrService service.QRCodeService
	metrics   service.SyncMetrics
	logger    *slog.Logger
}

// DrinkServiceParams holds dependencies for DrinkService, injected by Fx.
type DrinkServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	DrinkRepo   repository.DrinkRepository
	IDGenerator service.IDGenerator
	QRService   service.QRCodeService
	Metrics     service.SyncMetrics
	Logger      *slog.Logger
}

// NewDrinkService is the constructor for drinkService.
func NewDrinkService(params DrinkServiceParams) usecase.DrinkUsecase {
	return &drinkService{
		txManager: params.TxManager,
		drinkRepo: params.DrinkRepo,
		idGen:     params.IDGenerator,
		qrService: params.QRService,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *drinkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindDrink retrieves one drink.
func (srv *drinkService) FindDrink(ctx context.Context, drinkID uuid.UUID) (*entity.Drink, error) {
	drink, err := srv.drinkRepo.FindByID(ctx, drinkID)
	if err != nil {
		return nil, mapRepoError(err, "failed to find drink")
	}

	return drink, nil
}

// FindDrinks lists drinks by type in the requested order.
func (srv *drinkService) FindDrinks(ctx context.Context, query entity.DrinkQuery) ([]*entity.Drink, error) {
	drinks, err := srv.drinkRepo.FindAll(ctx, query.Normalize())
	if err != nil {
		return nil, mapRepoError(err, "failed to list drinks")
	}

	return drinks, nil
}

// CreateDrink adds a drink to the catalog with zeroed counters.
func (srv *drinkService) CreateDrink(ctx context.Context, input *usecase.CreateDrinkInput) (*entity.Drink, error) {
	name := strings.TrimSpace(input.Name)
	if err := entity.ValidateDrinkName(name); err != nil {
		return nil, err
	}

	now := time.Now()
	drink := &entity.Drink{
		ID:        srv.idGen.DrinkID(name, now),
		Name:      name,
		ImageURL:  strings.TrimSpace(input.ImageURL),
		Type:      catalogType(input.Type),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.drinkRepo.Create(ctx, drink); err != nil {
		srv.log(ctx).Error("Failed to create drink", slog.String("name", name), slog.Any("error", err))

		return nil, mapRepoError(err, "failed to create drink")
	}
	srv.log(ctx).Info("Drink created", slog.String("drink_id", drink.ID.String()))

	return drink, nil
}

// catalogType stores drinks with an unknown or "all" type as etc, since "all" is only a listing filter.
func catalogType(t entity.DrinkType) entity.DrinkType {
	if t == "" || t == entity.DrinkTypeAll {
		return entity.DrinkTypeEtc
	}

	return t
}

// UpdateDrink changes catalog fields. Counters are never written here.
func (srv *drinkService) UpdateDrink(ctx context.Context, input *usecase.UpdateDrinkInput) (*entity.Drink, error) {
	name := strings.TrimSpace(input.Name)
	if err := entity.ValidateDrinkName(name); err != nil {
		return nil, err
	}

	var updated *entity.Drink
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		drinkRepo := repoFactory.NewDrinkRepository()

		// Lock the row so a concurrent counter update is not overwritten with stale counters
		drink, err := drinkRepo.FindByIDForUpdate(ctx, input.DrinkID)
		if err != nil {
			return mapRepoError(err, "failed to find drink")
		}

		drink.Name = name
		drink.ImageURL = strings.TrimSpace(input.ImageURL)
		drink.Type = catalogType(input.Type)

		if err := drinkRepo.Update(ctx, drink); err != nil {
			return mapRepoError(err, "failed to update drink")
		}
		updated = drink

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteDrink removes a drink that no review references.
func (srv *drinkService) DeleteDrink(ctx context.Context, drinkID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		drinkRepo := repoFactory.NewDrinkRepository()

		if _, err := drinkRepo.FindByIDForUpdate(ctx, drinkID); err != nil {
			return mapRepoError(err, "failed to find drink")
		}

		summary, err := repoFactory.NewReviewRepository().Summarize(ctx, drinkID)
		if err != nil {
			return mapRepoError(err, "failed to count reviews")
		}
		if summary.Count > 0 {
			return domainerrors.ErrDrinkHasReviews
		}

		// Pending wish updates have nothing left to project onto
		if err := settlePending(ctx, repoFactory.NewCounterUpdateRepository(), drinkID); err != nil {
			return err
		}

		return mapRepoError(drinkRepo.DeleteByID(ctx, drinkID), "failed to delete drink")
	})
	if err != nil {
		return err
	}
	srv.log(ctx).Info("Drink deleted", slog.String("drink_id", drinkID.String()))

	return nil
}

// ApplyCounterUpdate applies one pending counter update to its drink. The drink row is locked, mutated,
// written and the update marked applied in a single transaction, so an update is applied at most once.
// Older pending updates of the same drink are applied first, oldest first, so an update never
// overtakes the change it follows.
// Applying an update that is already applied returns the drink unchanged.
func (srv *drinkService) ApplyCounterUpdate(ctx context.Context, updateID uuid.UUID) (*entity.Drink, error) {
	start := time.Now()

	update, err := srv.lookupUpdate(ctx, updateID)
	if err != nil {
		return nil, err
	}

	var drink *entity.Drink
	var caughtUp []*entity.CounterUpdate
	applied := false
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		drinkRepo := repoFactory.NewDrinkRepository()
		updateRepo := repoFactory.NewCounterUpdateRepository()

		// Lock order is drink first, then updates, matching RecountDrink.
		d, err := drinkRepo.FindByIDForUpdate(ctx, update.DrinkID)
		if err != nil {
			return mapRepoError(err, "failed to lock drink")
		}
		drink = d

		pending, err := updateRepo.FindPendingByDrink(ctx, update.DrinkID)
		if err != nil {
			return mapRepoError(err, "failed to list pending counter updates")
		}
		idx := slices.IndexFunc(pending, func(u *entity.CounterUpdate) bool { return u.ID == updateID })
		if idx < 0 {
			// Applied by an earlier call or caught up by a later update
			return nil
		}

		now := time.Now()
		for _, p := range pending[:idx+1] {
			u, err := updateRepo.FindByIDForUpdate(ctx, p.ID)
			if err != nil {
				return mapRepoError(err, "failed to lock counter update")
			}
			if u.IsApplied() {
				continue
			}
			if err := d.Apply(u); err != nil {
				return err
			}
			u.MarkApplied(now)
			if err := updateRepo.MarkApplied(ctx, u); err != nil {
				return mapRepoError(err, "failed to mark counter update applied")
			}
			if u.ID == updateID {
				applied = true
			} else {
				caughtUp = append(caughtUp, u)
			}
		}
		if !applied && len(caughtUp) == 0 {
			return nil
		}

		return mapRepoError(drinkRepo.Update(ctx, d), "failed to update drink counters")
	})

	if err != nil {
		srv.metrics.ObserveCounterUpdate(update.Op, false, time.Since(start))
		srv.recordFailure(ctx, updateID, err)

		return nil, err
	}
	if applied {
		elapsed := time.Since(start)
		for _, u := range caughtUp {
			srv.metrics.ObserveCounterUpdate(u.Op, true, elapsed)
		}
		srv.metrics.ObserveCounterUpdate(update.Op, true, elapsed)
		srv.log(ctx).Debug("Counter update applied",
			slog.String("update_id", updateID.String()),
			slog.String("drink_id", update.DrinkID.String()),
			slog.String("op", update.Op.String()),
			slog.Int("caught_up", len(caughtUp)),
		)
	}

	return drink, nil
}

// settlePending marks every pending update of a drink applied without touching the drink.
func settlePending(ctx context.Context, updateRepo repository.CounterUpdateRepository, drinkID uuid.UUID) error {
	pending, err := updateRepo.FindPendingByDrink(ctx, drinkID)
	if err != nil {
		return mapRepoError(err, "failed to list pending counter updates")
	}

	now := time.Now()
	for _, u := range pending {
		u.MarkApplied(now)
		if err := updateRepo.MarkApplied(ctx, u); err != nil {
			return mapRepoError(err, "failed to settle counter update")
		}
	}

	return nil
}

func (srv *drinkService) lookupUpdate(ctx context.Context, updateID uuid.UUID) (*entity.CounterUpdate, error) {
	var update *entity.CounterUpdate
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		u, err := repoFactory.NewCounterUpdateRepository().FindByID(ctx, updateID)
		if err != nil {
			return mapRepoError(err, "failed to find counter update")
		}
		update = u

		return nil
	})

	return update, err
}

// recordFailure stores the attempt on the pending update. It runs detached from ctx,
// which has often expired by the time phase 2 fails.
func (srv *drinkService) recordFailure(ctx context.Context, updateID uuid.UUID, cause error) {
	bgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), markFailedTimeout)
	defer cancel()

	err := srv.txManager.Execute(bgCtx, func(repoFactory repository.RepositoryFactory) error {
		updateRepo := repoFactory.NewCounterUpdateRepository()

		u, err := updateRepo.FindByIDForUpdate(bgCtx, updateID)
		if err != nil {
			return err
		}
		if u.IsApplied() {
			return nil
		}
		u.MarkFailed(cause)

		return updateRepo.MarkFailed(bgCtx, u)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to record counter update failure",
			slog.String("update_id", updateID.String()),
			slog.Any("error", err),
		)
	}
}

// GenerateShareQR renders a QR code pointing at the drink's public page.
func (srv *drinkService) GenerateShareQR(ctx context.Context, drinkID uuid.UUID) ([]byte, error) {
	if _, err := srv.FindDrink(ctx, drinkID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateDrinkQR(drinkID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to generate QR code")
	}

	return png, nil
}
