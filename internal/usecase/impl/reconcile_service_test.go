package impl

import (
	"context"
	"testing"
	"time"

	"sommelier/internal/domain/entity"
	domainerrors "sommelier/internal/domain/errors"
	"sommelier/internal/infra/persistence/memory"
	"sommelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileService_RecountDrink(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	drink := c.createDrink(t, "Tempranillo")

	for i, rating := range []int{2, 4, 5} {
		_, err := c.reviews.CreateReview(ctx, &usecase.CreateReviewInput{
			UserID:  entity.UserID([]string{"a", "b", "c"}[i]),
			DrinkID: drink.ID,
			Rating:  rating,
		})
		require.NoError(t, err)
	}
	_, err := c.wishes.CreateWish(ctx, "a", drink.ID)
	require.NoError(t, err)

	// Drift the counters and leave a stale update behind
	drifted := c.drink(t, drink.ID)
	drifted.AvgRating, drifted.NumOfReviews, drifted.NumOfWish = 1, 9, 7
	require.NoError(t, memory.NewDrinkRepository(c.store).Update(ctx, drifted))
	stale := entity.NewCounterUpdate(drink.ID, uuid.New(), entity.CounterOpAddWish, 0, 0, time.Now())
	require.NoError(t, memory.NewCounterUpdateRepository(c.store).Create(ctx, stale))

	got, err := c.reconcile.RecountDrink(ctx, drink.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.NumOfReviews)
	assert.InDelta(t, 11.0/3, float64(got.AvgRating), 1e-9)
	assert.Equal(t, 1, got.NumOfWish)
	assert.Empty(t, c.pending(t, drink.ID))

	_, err = c.reconcile.RecountDrink(ctx, uuid.New())
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestReconcileService_ReplayPending(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	updates := memory.NewCounterUpdateRepository(c.store)
	drink := c.createDrink(t, "Grenache")

	base := time.Now()
	for i := 0; i < 3; i++ {
		u := entity.NewCounterUpdate(drink.ID, uuid.New(), entity.CounterOpAddWish, 0, 0, base.Add(time.Duration(i)*time.Millisecond))
		require.NoError(t, updates.Create(ctx, u))
	}
	orphan := entity.NewCounterUpdate(uuid.New(), uuid.New(), entity.CounterOpAddWish, 0, 0, base.Add(time.Second))
	require.NoError(t, updates.Create(ctx, orphan))

	result, err := c.reconcile.ReplayPending(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, &usecase.ReplayResult{Scanned: 2, Applied: 2}, result)
	assert.Equal(t, 2, c.drink(t, drink.ID).NumOfWish)

	result, err = c.reconcile.ReplayPending(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, &usecase.ReplayResult{Scanned: 2, Applied: 1, Failed: 1}, result)
	assert.Equal(t, 3, c.drink(t, drink.ID).NumOfWish)

	err = c.reconcile.ReplayUpdate(ctx, orphan.ID)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestReconcileService_ReplayPending_CanceledContext(t *testing.T) {
	c := newCatalog(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.reconcile.ReplayPending(ctx, 10)

	assert.ErrorIs(t, err, context.Canceled)
}
