package impl

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"sommelier/internal/domain/entity"
	domainerrors "sommelier/internal/domain/errors"
	"sommelier/internal/domain/service"
	mockSvc "sommelier/internal/mocks/service"
	mockUsecase "sommelier/internal/mocks/usecase"
	"sommelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewService_CreateAndDelete_RestoresDrink(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	drink := c.seedDrink(t, 3.7, 4)

	review, err := c.reviews.CreateReview(ctx, &usecase.CreateReviewInput{
		UserID:  "alice",
		DrinkID: drink.ID,
		Rating:  5,
		Comment: "lovely",
	})
	require.NoError(t, err)

	got := c.drink(t, drink.ID)
	assert.Equal(t, 5, got.NumOfReviews)
	assert.InDelta(t, 3.96, float64(got.AvgRating), 1e-9)

	deleted, err := c.reviews.DeleteReview(ctx, &usecase.DeleteReviewInput{ReviewID: review.ID, UserID: "alice"})
	require.NoError(t, err)
	assert.Equal(t, review.ID, deleted.ID)

	got = c.drink(t, drink.ID)
	assert.Equal(t, 4, got.NumOfReviews)
	assert.InDelta(t, 3.7, float64(got.AvgRating), 1e-9)
	assert.Empty(t, c.pending(t, drink.ID))
}

func TestReviewService_CreateReview_Duplicate(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	drink := c.createDrink(t, "Chablis")
	input := &usecase.CreateReviewInput{UserID: "alice", DrinkID: drink.ID, Rating: 4}

	_, err := c.reviews.CreateReview(ctx, input)
	require.NoError(t, err)

	_, err = c.reviews.CreateReview(ctx, input)
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))

	got := c.drink(t, drink.ID)
	assert.Equal(t, 1, got.NumOfReviews)
	assert.InDelta(t, 4.0, float64(got.AvgRating), 1e-9)
}

func TestReviewService_CreateReview_Validation(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	drink := c.createDrink(t, "Chablis")

	tests := []struct {
		name  string
		input *usecase.CreateReviewInput
		kind  domainerrors.Kind
	}{
		{"rating too high", &usecase.CreateReviewInput{UserID: "a", DrinkID: drink.ID, Rating: 6}, domainerrors.KindInvalid},
		{"negative rating", &usecase.CreateReviewInput{UserID: "a", DrinkID: drink.ID, Rating: -1}, domainerrors.KindInvalid},
		{"unknown drink", &usecase.CreateReviewInput{UserID: "a", DrinkID: uuid.New(), Rating: 3}, domainerrors.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.reviews.CreateReview(ctx, tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.kind, domainerrors.KindOf(err))
		})
	}

	assert.Equal(t, 0, c.drink(t, drink.ID).NumOfReviews)
}

func TestReviewService_UpdateReview(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	drink := c.createDrink(t, "Chablis")

	review, err := c.reviews.CreateReview(ctx, &usecase.CreateReviewInput{UserID: "alice", DrinkID: drink.ID, Rating: 5})
	require.NoError(t, err)

	updated, err := c.reviews.UpdateReview(ctx, &usecase.UpdateReviewInput{
		ReviewID: review.ID,
		UserID:   "alice",
		Rating:   4,
		Comment:  "second thoughts",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReviewRating(4), updated.Rating)
	assert.Equal(t, review.CreatedAt, updated.CreatedAt)

	got := c.drink(t, drink.ID)
	assert.Equal(t, 1, got.NumOfReviews)
	assert.InDelta(t, 4.0, float64(got.AvgRating), 1e-9)

	// Comment-only edits record no counter update
	_, err = c.reviews.UpdateReview(ctx, &usecase.UpdateReviewInput{ReviewID: review.ID, UserID: "alice", Rating: 4, Comment: "fine"})
	require.NoError(t, err)
	assert.Empty(t, c.pending(t, drink.ID))
}

func TestReviewService_Ownership(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	drink := c.createDrink(t, "Chablis")

	review, err := c.reviews.CreateReview(ctx, &usecase.CreateReviewInput{UserID: "alice", DrinkID: drink.ID, Rating: 5})
	require.NoError(t, err)

	_, err = c.reviews.UpdateReview(ctx, &usecase.UpdateReviewInput{ReviewID: review.ID, UserID: "mallory", Rating: 1})
	assert.Equal(t, domainerrors.KindUnauthorized, domainerrors.KindOf(err))

	_, err = c.reviews.DeleteReview(ctx, &usecase.DeleteReviewInput{ReviewID: review.ID, UserID: "mallory"})
	assert.Equal(t, domainerrors.KindUnauthorized, domainerrors.KindOf(err))

	got, err := c.reviews.FindReview(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReviewRating(5), got.Rating)
}

func TestReviewService_DeleteReview_NotFound(t *testing.T) {
	c := newCatalog(t)

	_, err := c.reviews.DeleteReview(context.Background(), &usecase.DeleteReviewInput{ReviewID: uuid.New(), UserID: "alice"})

	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestReviewService_ConcurrentCreates(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	drink := c.createDrink(t, "Barolo")

	const writers = 40
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	sum := 0
	for i := 0; i < writers; i++ {
		rating := i % (entity.MaxRating + 1)
		sum += rating
		wg.Add(1)
		go func(i, rating int) {
			defer wg.Done()
			_, err := c.reviews.CreateReview(ctx, &usecase.CreateReviewInput{
				UserID:  entity.UserID(fmt.Sprintf("user-%d", i)),
				DrinkID: drink.ID,
				Rating:  rating,
			})
			errs <- err
		}(i, rating)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	got := c.drink(t, drink.ID)
	assert.Equal(t, writers, got.NumOfReviews)
	assert.InDelta(t, float64(sum)/writers, float64(got.AvgRating), 1e-6)
	assert.Empty(t, c.pending(t, drink.ID))
}

func TestReviewService_DrinkFailureKeepsReview(t *testing.T) {
	drinks := mockUsecase.NewMockDrinkUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	c := newCatalog(t, withDrinkUsecase(drinks), withPublisher(publisher))
	ctx := context.Background()
	drink := c.createDrink(t, "Rioja")

	drinks.EXPECT().
		ApplyCounterUpdate(mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return(nil, errors.Wrap(domainerrors.ErrTransactionFailed, "lock timeout")).
		Once()
	publisher.EXPECT().
		PublishCounterRepairEvent(mock.Anything, mock.MatchedBy(func(e *service.CounterRepairEvent) bool {
			return e.DrinkID == drink.ID.String() && e.Op == entity.CounterOpAddRating.String()
		})).
		Return(nil).
		Once()

	review, err := c.reviews.CreateReview(ctx, &usecase.CreateReviewInput{UserID: "alice", DrinkID: drink.ID, Rating: 3})

	var pendingErr *domainerrors.PendingSyncError
	require.ErrorAs(t, err, &pendingErr)
	assert.Equal(t, drink.ID, pendingErr.DrinkID)
	assert.Equal(t, domainerrors.KindSystem, domainerrors.KindOf(err))
	require.NotNil(t, review)

	// The review is committed while the drink is untouched
	stored, err := c.reviews.FindReview(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReviewRating(3), stored.Rating)
	assert.Equal(t, 0, c.drink(t, drink.ID).NumOfReviews)

	pending := c.pending(t, drink.ID)
	require.Len(t, pending, 1)
	assert.Equal(t, pendingErr.UpdateID, pending[0].ID)

	// Replaying applies the update exactly once
	result, err := c.reconcile.ReplayPending(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, &usecase.ReplayResult{Scanned: 1, Applied: 1}, result)
	require.NoError(t, c.reconcile.ReplayUpdate(ctx, pendingErr.UpdateID))

	got := c.drink(t, drink.ID)
	assert.Equal(t, 1, got.NumOfReviews)
	assert.InDelta(t, 3.0, float64(got.AvgRating), 1e-9)
	assert.Empty(t, c.pending(t, drink.ID))
}

func TestReviewService_RepairEventFailureIsNotFatal(t *testing.T) {
	drinks := mockUsecase.NewMockDrinkUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	c := newCatalog(t, withDrinkUsecase(drinks), withPublisher(publisher))
	drink := c.createDrink(t, "Rioja")

	drinks.EXPECT().ApplyCounterUpdate(mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded).Once()
	publisher.EXPECT().PublishCounterRepairEvent(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	review, err := c.reviews.CreateReview(context.Background(), &usecase.CreateReviewInput{UserID: "alice", DrinkID: drink.ID, Rating: 2})

	var pendingErr *domainerrors.PendingSyncError
	require.ErrorAs(t, err, &pendingErr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotNil(t, review)
	assert.Len(t, c.pending(t, drink.ID), 1)
}

func TestReviewService_FindReviews(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	first := c.createDrink(t, "Chablis")
	second := c.createDrink(t, "Barolo")

	for _, in := range []*usecase.CreateReviewInput{
		{UserID: "alice", DrinkID: first.ID, Rating: 4},
		{UserID: "alice", DrinkID: second.ID, Rating: 2},
		{UserID: "bob", DrinkID: first.ID, Rating: 5},
	} {
		_, err := c.reviews.CreateReview(ctx, in)
		require.NoError(t, err)
	}

	byUser, err := c.reviews.FindReviews(ctx, entity.ReviewQuery{UserID: "alice"})
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	byDrink, err := c.reviews.FindReviews(ctx, entity.ReviewQuery{DrinkID: first.ID})
	require.NoError(t, err)
	assert.Len(t, byDrink, 2)

	all, err := c.reviews.FindReviews(ctx, entity.ReviewQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestReviewService_DeleteAfterFailedCreate_KeepsCountersExact(t *testing.T) {
	drinks := mockUsecase.NewMockDrinkUsecase(t)
	c := newCatalog(t, withDrinkUsecase(drinks))
	ctx := context.Background()
	drink := c.createDrink(t, "Rioja")

	drinks.EXPECT().ApplyCounterUpdate(mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded).Once()
	drinks.EXPECT().ApplyCounterUpdate(mock.Anything, mock.Anything).RunAndReturn(c.drinks.ApplyCounterUpdate)

	review, err := c.reviews.CreateReview(ctx, &usecase.CreateReviewInput{UserID: "alice", DrinkID: drink.ID, Rating: 3})
	var pendingErr *domainerrors.PendingSyncError
	require.ErrorAs(t, err, &pendingErr)

	// The delete catches up the add it follows instead of landing on an empty drink
	_, err = c.reviews.DeleteReview(ctx, &usecase.DeleteReviewInput{ReviewID: review.ID, UserID: "alice"})
	require.NoError(t, err)

	result, err := c.reconcile.ReplayPending(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, result.Scanned)

	stored, err := c.reviews.FindReviews(ctx, entity.ReviewQuery{DrinkID: drink.ID})
	require.NoError(t, err)
	assert.Empty(t, stored)

	got := c.drink(t, drink.ID)
	assert.Equal(t, 0, got.NumOfReviews)
	assert.Equal(t, entity.DrinkRating(0), got.AvgRating)
	assert.Empty(t, c.pending(t, drink.ID))
}

func TestReviewService_ReplayOfLaterUpdateCatchesUpEarlierOnes(t *testing.T) {
	drinks := mockUsecase.NewMockDrinkUsecase(t)
	c := newCatalog(t, withDrinkUsecase(drinks))
	ctx := context.Background()
	drink := c.createDrink(t, "Rioja")

	drinks.EXPECT().ApplyCounterUpdate(mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded).Times(2)

	review, err := c.reviews.CreateReview(ctx, &usecase.CreateReviewInput{UserID: "alice", DrinkID: drink.ID, Rating: 5})
	require.Error(t, err)
	_, err = c.reviews.UpdateReview(ctx, &usecase.UpdateReviewInput{ReviewID: review.ID, UserID: "alice", Rating: 2})
	var pendingErr *domainerrors.PendingSyncError
	require.ErrorAs(t, err, &pendingErr)

	pending := c.pending(t, drink.ID)
	require.Len(t, pending, 2)
	assert.Equal(t, entity.CounterOpAddRating, pending[0].Op)
	assert.Equal(t, entity.CounterOpUpdateRating, pending[1].Op)

	// Replaying the update first must not run update_rating against an empty drink
	require.NoError(t, c.reconcile.ReplayUpdate(ctx, pendingErr.UpdateID))

	got := c.drink(t, drink.ID)
	assert.Equal(t, 1, got.NumOfReviews)
	assert.InDelta(t, 2.0, float64(got.AvgRating), 1e-9)
	assert.Empty(t, c.pending(t, drink.ID))

	result, err := c.reconcile.ReplayPending(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, result.Scanned)
	assert.Equal(t, 1, c.drink(t, drink.ID).NumOfReviews)
}
