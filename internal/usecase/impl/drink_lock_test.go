package impl

import (
	"context"
	"testing"

	"sommelier/internal/domain/entity"
	domainerrors "sommelier/internal/domain/errors"
	"sommelier/internal/domain/repository"
	"sommelier/internal/infra/identity"
	"sommelier/internal/infra/metrics"
	"sommelier/internal/infra/pubsub"
	mockRepo "sommelier/internal/mocks/repository"
	mockUsecase "sommelier/internal/mocks/usecase"
	"sommelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// writeFixtures runs the review and wish services over mocked repositories, to pin down
// which drink reads the owning writes perform inside their transaction.
type writeFixtures struct {
	reviews     usecase.ReviewUsecase
	wishes      usecase.WishUsecase
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
	drinkRepo   *mockRepo.MockDrinkRepository
	reviewRepo  *mockRepo.MockReviewRepository
	wishRepo    *mockRepo.MockWishRepository
	updateRepo  *mockRepo.MockCounterUpdateRepository
	drinks      *mockUsecase.MockDrinkUsecase
}

func createWriteFixtures(t *testing.T) writeFixtures {
	f := writeFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		repoFactory: mockRepo.NewMockRepositoryFactory(t),
		drinkRepo:   mockRepo.NewMockDrinkRepository(t),
		reviewRepo:  mockRepo.NewMockReviewRepository(t),
		wishRepo:    mockRepo.NewMockWishRepository(t),
		updateRepo:  mockRepo.NewMockCounterUpdateRepository(t),
		drinks:      mockUsecase.NewMockDrinkUsecase(t),
	}

	cfg := newTestConfig()
	logger := newDiscardLogger()
	idGen, err := identity.NewGenerator(cfg)
	require.NoError(t, err)

	counterSync := NewCounterSync(CounterSyncParams{
		DrinkUsecase: f.drinks,
		Publisher:    pubsub.NewNoopPublisher(logger),
		Metrics:      metrics.NewSyncMetrics(prometheus.NewRegistry()),
		Config:       cfg,
		Logger:       logger,
	})
	f.reviews = NewReviewService(ReviewServiceParams{
		TxManager:   f.txManager,
		ReviewRepo:  f.reviewRepo,
		IDGenerator: idGen,
		CounterSync: counterSync,
		Logger:      logger,
	})
	f.wishes = NewWishService(WishServiceParams{
		TxManager:   f.txManager,
		WishRepo:    f.wishRepo,
		IDGenerator: idGen,
		CounterSync: counterSync,
		Logger:      logger,
	})

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.repoFactory)
		}).
		Maybe()
	f.repoFactory.EXPECT().NewDrinkRepository().Return(f.drinkRepo).Maybe()
	f.repoFactory.EXPECT().NewReviewRepository().Return(f.reviewRepo).Maybe()
	f.repoFactory.EXPECT().NewWishRepository().Return(f.wishRepo).Maybe()
	f.repoFactory.EXPECT().NewCounterUpdateRepository().Return(f.updateRepo).Maybe()

	return f
}

func TestReviewService_CreateReview_SharesDrinkLockBeforeWriting(t *testing.T) {
	f := createWriteFixtures(t)
	ctx := context.Background()
	drink := &entity.Drink{ID: uuid.New(), Name: "Rioja"}

	lock := f.drinkRepo.EXPECT().FindByIDForShare(ctx, drink.ID).Return(drink, nil).Once()
	lookup := f.reviewRepo.EXPECT().FindByUserAndDrink(ctx, entity.UserID("alice"), drink.ID).Return(nil, repository.ErrReviewNotFound).Once()
	create := f.reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil).Once()
	record := f.updateRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.CounterUpdate) bool {
			return u.DrinkID == drink.ID && u.Op == entity.CounterOpAddRating && u.NewRating == 4
		})).
		Return(nil).
		Once()
	mock.InOrder(lock, lookup, create, record)
	f.drinks.EXPECT().ApplyCounterUpdate(mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(drink, nil).Once()

	review, err := f.reviews.CreateReview(ctx, &usecase.CreateReviewInput{UserID: "alice", DrinkID: drink.ID, Rating: 4})
	require.NoError(t, err)
	assert.Equal(t, drink.ID, review.DrinkID)
}

func TestReviewService_CreateReview_MissingDrink(t *testing.T) {
	f := createWriteFixtures(t)
	ctx := context.Background()
	drinkID := uuid.New()

	f.drinkRepo.EXPECT().FindByIDForShare(ctx, drinkID).Return(nil, repository.ErrDrinkNotFound).Once()

	_, err := f.reviews.CreateReview(ctx, &usecase.CreateReviewInput{UserID: "alice", DrinkID: drinkID, Rating: 4})
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestReviewService_DeleteReview_SharesDrinkLockBeforeDeleting(t *testing.T) {
	f := createWriteFixtures(t)
	ctx := context.Background()
	review := &entity.Review{ID: uuid.New(), DrinkID: uuid.New(), UserID: "alice", Rating: 3}

	f.reviewRepo.EXPECT().FindByID(ctx, review.ID).Return(review, nil).Once()
	lock := f.drinkRepo.EXPECT().FindByIDForShare(ctx, review.DrinkID).Return(&entity.Drink{ID: review.DrinkID}, nil).Once()
	remove := f.reviewRepo.EXPECT().DeleteByID(ctx, review.ID).Return(nil).Once()
	record := f.updateRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.CounterUpdate")).Return(nil).Once()
	mock.InOrder(lock, remove, record)
	f.drinks.EXPECT().ApplyCounterUpdate(mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(&entity.Drink{}, nil).Once()

	_, err := f.reviews.DeleteReview(ctx, &usecase.DeleteReviewInput{ReviewID: review.ID, UserID: "alice"})
	require.NoError(t, err)
}

func TestWishService_CreateWish_SharesDrinkLock(t *testing.T) {
	f := createWriteFixtures(t)
	ctx := context.Background()
	drinkID := uuid.New()

	f.drinkRepo.EXPECT().FindByIDForShare(ctx, drinkID).Return(nil, repository.ErrDrinkNotFound).Once()

	_, err := f.wishes.CreateWish(ctx, "alice", drinkID)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestWishService_DeleteWish_DrinkAlreadyGone(t *testing.T) {
	f := createWriteFixtures(t)
	ctx := context.Background()
	wish := &entity.Wish{ID: uuid.New(), UserID: "alice", DrinkID: uuid.New()}

	f.wishRepo.EXPECT().FindByUserAndDrink(ctx, wish.UserID, wish.DrinkID).Return(wish, nil).Once()
	f.drinkRepo.EXPECT().FindByIDForShare(ctx, wish.DrinkID).Return(nil, repository.ErrDrinkNotFound).Once()
	f.wishRepo.EXPECT().DeleteByID(ctx, wish.ID).Return(nil).Once()
	f.updateRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.CounterUpdate")).Return(nil).Once()
	f.drinks.EXPECT().ApplyCounterUpdate(mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(&entity.Drink{}, nil).Once()

	deleted, err := f.wishes.DeleteWish(ctx, wish.UserID, wish.DrinkID)
	require.NoError(t, err)
	assert.Equal(t, wish.ID, deleted.ID)
}
