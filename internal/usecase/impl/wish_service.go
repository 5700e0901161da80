package impl

import (
	"context"
	"log/slog"
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

// wishService implements the WishUsecase interface.
type wishService struct {
	txManager repository.TransactionManager
	wishRepo  repository.WishRepository
	idGen     service.IDGenerator
	sync      *CounterSync
	logger    *slog.Logger
}

// WishServiceParams holds dependencies for WishService, injected by Fx.
type WishServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	WishRepo    repository.WishRepository
	IDGenerator service.IDGenerator
	CounterSync *CounterSync
	Logger      *slog.Logger
}

// NewWishService is the constructor for wishService.
func NewWishService(params WishServiceParams) usecase.WishUsecase {
	return &wishService{
		txManager: params.TxManager,
		wishRepo:  params.WishRepo,
		idGen:     params.IDGenerator,
		sync:      params.CounterSync,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *wishService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindWishes lists wishes by user and/or drink, newest first.
func (srv *wishService) FindWishes(ctx context.Context, query entity.WishQuery) ([]*entity.Wish, error) {
	wishes, err := srv.wishRepo.FindAll(ctx, query)
	if err != nil {
		return nil, mapRepoError(err, "failed to list wishes")
	}

	return wishes, nil
}

// CreateWish puts a drink on the user's wishlist and increments the drink's wish counter.
func (srv *wishService) CreateWish(ctx context.Context, userID entity.UserID, drinkID uuid.UUID) (*entity.Wish, error) {
	now := time.Now()
	wish := &entity.Wish{
		ID:        srv.idGen.WishID(userID, drinkID),
		UserID:    userID,
		DrinkID:   drinkID,
		CreatedAt: now,
	}

	var update *entity.CounterUpdate
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		wishRepo := repoFactory.NewWishRepository()

		// Locked against recount and delete until commit
		if _, err := repoFactory.NewDrinkRepository().FindByIDForShare(ctx, drinkID); err != nil {
			return mapRepoError(err, "failed to find drink")
		}

		_, err := wishRepo.FindByUserAndDrink(ctx, userID, drinkID)
		if err == nil {
			return domainerrors.ErrWishAlreadyExists
		}
		if !errors.Is(err, repository.ErrWishNotFound) {
			return mapRepoError(err, "failed to look up wish")
		}

		if err := wishRepo.Create(ctx, wish); err != nil {
			return mapRepoError(err, "failed to create wish")
		}

		update = entity.NewCounterUpdate(drinkID, wish.ID, entity.CounterOpAddWish, 0, 0, now)

		return mapRepoError(repoFactory.NewCounterUpdateRepository().Create(ctx, update), "failed to record counter update")
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Wish created", slog.String("wish_id", wish.ID.String()))

	return wish, srv.sync.apply(ctx, update)
}

// DeleteWish takes a drink off the user's wishlist and decrements the drink's wish counter.
func (srv *wishService) DeleteWish(ctx context.Context, userID entity.UserID, drinkID uuid.UUID) (*entity.Wish, error) {
	var wish *entity.Wish
	var update *entity.CounterUpdate
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		wishRepo := repoFactory.NewWishRepository()

		w, err := wishRepo.FindByUserAndDrink(ctx, userID, drinkID)
		if err != nil {
			return mapRepoError(err, "failed to find wish")
		}
		// A wish can outlive its drink; only a live drink needs the lock
		if _, err := repoFactory.NewDrinkRepository().FindByIDForShare(ctx, drinkID); err != nil && !errors.Is(err, repository.ErrDrinkNotFound) {
			return mapRepoError(err, "failed to find drink")
		}

		if err := wishRepo.DeleteByID(ctx, w.ID); err != nil {
			return mapRepoError(err, "failed to delete wish")
		}
		wish = w

		update = entity.NewCounterUpdate(drinkID, w.ID, entity.CounterOpDeleteWish, 0, 0, time.Now())

		return mapRepoError(repoFactory.NewCounterUpdateRepository().Create(ctx, update), "failed to record counter update")
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Wish deleted", slog.String("wish_id", wish.ID.String()))

	return wish, srv.sync.apply(ctx, update)
}
