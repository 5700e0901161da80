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

// reviewService implements the ReviewUsecase interface.
// Every mutation writes the review and its pending counter update first, then syncs the drink.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	idGen      service.IDGenerator
	sync       *CounterSync
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ReviewRepo  repository.ReviewRepository
	IDGenerator service.IDGenerator
	CounterSync *CounterSync
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		idGen:      params.IDGenerator,
		sync:       params.CounterSync,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindReview retrieves one review.
func (srv *reviewService) FindReview(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, mapRepoError(err, "failed to find review")
	}

	return review, nil
}

// FindReviews lists reviews by author and/or drink, newest first.
func (srv *reviewService) FindReviews(ctx context.Context, query entity.ReviewQuery) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindAll(ctx, query)
	if err != nil {
		return nil, mapRepoError(err, "failed to list reviews")
	}

	return reviews, nil
}

// CreateReview stores a user's review of a drink and adds its rating to the drink.
func (srv *reviewService) CreateReview(ctx context.Context, input *usecase.CreateReviewInput) (*entity.Review, error) {
	rating, err := entity.NewReviewRating(input.Rating)
	if err != nil {
		return nil, err
	}
	if err := entity.ValidateComment(input.Comment); err != nil {
		return nil, err
	}

	now := time.Now()
	review := &entity.Review{
		ID:        srv.idGen.ReviewID(input.UserID, input.DrinkID),
		DrinkID:   input.DrinkID,
		UserID:    input.UserID,
		Rating:    rating,
		Comment:   input.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var update *entity.CounterUpdate
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		// 1. The drink must exist, and stays locked against recount and delete until commit
		if _, err := repoFactory.NewDrinkRepository().FindByIDForShare(ctx, input.DrinkID); err != nil {
			return mapRepoError(err, "failed to find drink")
		}

		// 2. One review per user and drink
		_, err := reviewRepo.FindByUserAndDrink(ctx, input.UserID, input.DrinkID)
		if err == nil {
			return domainerrors.ErrReviewAlreadyExists
		}
		if !errors.Is(err, repository.ErrReviewNotFound) {
			return mapRepoError(err, "failed to look up review")
		}

		// 3. Store the review together with the counter change it owes the drink
		if err := reviewRepo.Create(ctx, review); err != nil {
			return mapRepoError(err, "failed to create review")
		}

		update = entity.NewCounterUpdate(review.DrinkID, review.ID, entity.CounterOpAddRating, 0, rating, now)

		return mapRepoError(repoFactory.NewCounterUpdateRepository().Create(ctx, update), "failed to record counter update")
	})
	if err != nil {
		srv.log(ctx).Info("Review not created",
			slog.String("user_id", input.UserID.String()),
			slog.String("drink_id", input.DrinkID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}
	srv.log(ctx).Info("Review created", slog.String("review_id", review.ID.String()))

	return review, srv.sync.apply(ctx, update)
}

// UpdateReview changes the rating and comment of the caller's own review.
func (srv *reviewService) UpdateReview(ctx context.Context, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	rating, err := entity.NewReviewRating(input.Rating)
	if err != nil {
		return nil, err
	}
	if err := entity.ValidateComment(input.Comment); err != nil {
		return nil, err
	}

	var review *entity.Review
	var update *entity.CounterUpdate
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		r, err := reviewRepo.FindByID(ctx, input.ReviewID)
		if err != nil {
			return mapRepoError(err, "failed to find review")
		}
		if !r.IsOwnedBy(input.UserID) {
			return domainerrors.ErrReviewOwnership
		}
		if _, err := repoFactory.NewDrinkRepository().FindByIDForShare(ctx, r.DrinkID); err != nil {
			return mapRepoError(err, "failed to find drink")
		}

		now := time.Now()
		oldRating := r.Edit(rating, input.Comment, now)
		if err := reviewRepo.Update(ctx, r); err != nil {
			return mapRepoError(err, "failed to update review")
		}
		review = r

		// A comment-only edit owes the drink nothing
		if oldRating == rating {
			return nil
		}
		update = entity.NewCounterUpdate(r.DrinkID, r.ID, entity.CounterOpUpdateRating, oldRating, rating, now)

		return mapRepoError(repoFactory.NewCounterUpdateRepository().Create(ctx, update), "failed to record counter update")
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Review updated", slog.String("review_id", review.ID.String()))

	if update == nil {
		return review, nil
	}

	return review, srv.sync.apply(ctx, update)
}

// DeleteReview removes the caller's own review and its rating from the drink. It returns the deleted review.
func (srv *reviewService) DeleteReview(ctx context.Context, input *usecase.DeleteReviewInput) (*entity.Review, error) {
	var review *entity.Review
	var update *entity.CounterUpdate
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		r, err := reviewRepo.FindByID(ctx, input.ReviewID)
		if err != nil {
			return mapRepoError(err, "failed to find review")
		}
		if !r.IsOwnedBy(input.UserID) {
			return domainerrors.ErrReviewOwnership
		}
		if _, err := repoFactory.NewDrinkRepository().FindByIDForShare(ctx, r.DrinkID); err != nil {
			return mapRepoError(err, "failed to find drink")
		}

		if err := reviewRepo.DeleteByID(ctx, r.ID); err != nil {
			return mapRepoError(err, "failed to delete review")
		}
		review = r

		update = entity.NewCounterUpdate(r.DrinkID, r.ID, entity.CounterOpDeleteRating, r.Rating, 0, time.Now())

		return mapRepoError(repoFactory.NewCounterUpdateRepository().Create(ctx, update), "failed to record counter update")
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Review deleted", slog.String("review_id", review.ID.String()))

	return review, srv.sync.apply(ctx, update)
}
