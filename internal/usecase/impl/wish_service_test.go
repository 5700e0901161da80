package impl

import (
	"context"
	"testing"

	"sommelier/internal/domain/entity"
	domainerrors "sommelier/internal/domain/errors"
	"sommelier/internal/domain/service"
	mockSvc "sommelier/internal/mocks/service"
	mockUsecase "sommelier/internal/mocks/usecase"
	"sommelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWishService_CreateDeleteRoundTrip(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	drink := c.createDrink(t, "Soave")

	wish, err := c.wishes.CreateWish(ctx, "alice", drink.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, c.drink(t, drink.ID).NumOfWish)

	deleted, err := c.wishes.DeleteWish(ctx, "alice", drink.ID)
	require.NoError(t, err)
	assert.Equal(t, wish.ID, deleted.ID)
	assert.Equal(t, 0, c.drink(t, drink.ID).NumOfWish)

	_, err = c.wishes.DeleteWish(ctx, "alice", drink.ID)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
	assert.Equal(t, 0, c.drink(t, drink.ID).NumOfWish)
}

func TestWishService_CreateWish_Conflicts(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	drink := c.createDrink(t, "Soave")

	_, err := c.wishes.CreateWish(ctx, "alice", drink.ID)
	require.NoError(t, err)

	_, err = c.wishes.CreateWish(ctx, "alice", drink.ID)
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))

	_, err = c.wishes.CreateWish(ctx, "alice", uuid.New())
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))

	assert.Equal(t, 1, c.drink(t, drink.ID).NumOfWish)
}

func TestWishService_FindWishes(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	first := c.createDrink(t, "Soave")
	second := c.createDrink(t, "Tokaji")

	for _, w := range []struct {
		user  entity.UserID
		drink uuid.UUID
	}{
		{"alice", first.ID},
		{"alice", second.ID},
		{"bob", second.ID},
	} {
		_, err := c.wishes.CreateWish(ctx, w.user, w.drink)
		require.NoError(t, err)
	}

	mine, err := c.wishes.FindWishes(ctx, entity.WishQuery{UserID: "alice"})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	forDrink, err := c.wishes.FindWishes(ctx, entity.WishQuery{DrinkID: second.ID})
	require.NoError(t, err)
	assert.Len(t, forDrink, 2)
	assert.Equal(t, 2, c.drink(t, second.ID).NumOfWish)
}

func TestWishService_DrinkFailureKeepsWish(t *testing.T) {
	drinks := mockUsecase.NewMockDrinkUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	c := newCatalog(t, withDrinkUsecase(drinks), withPublisher(publisher))
	ctx := context.Background()
	drink := c.createDrink(t, "Tokaji")

	drinks.EXPECT().ApplyCounterUpdate(mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded).Once()
	publisher.EXPECT().
		PublishCounterRepairEvent(mock.Anything, mock.MatchedBy(func(e *service.CounterRepairEvent) bool {
			return e.DrinkID == drink.ID.String() && e.Op == entity.CounterOpAddWish.String()
		})).
		Return(nil).
		Once()

	wish, err := c.wishes.CreateWish(ctx, "alice", drink.ID)

	var pendingErr *domainerrors.PendingSyncError
	require.ErrorAs(t, err, &pendingErr)
	require.NotNil(t, wish)

	// The wish is committed while the drink is untouched
	stored, err := c.wishes.FindWishes(ctx, entity.WishQuery{UserID: "alice"})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, wish.ID, stored[0].ID)
	assert.Equal(t, 0, c.drink(t, drink.ID).NumOfWish)
	require.Len(t, c.pending(t, drink.ID), 1)

	// Replaying applies the update exactly once
	result, err := c.reconcile.ReplayPending(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, &usecase.ReplayResult{Scanned: 1, Applied: 1}, result)
	require.NoError(t, c.reconcile.ReplayUpdate(ctx, pendingErr.UpdateID))

	assert.Equal(t, 1, c.drink(t, drink.ID).NumOfWish)
	assert.Empty(t, c.pending(t, drink.ID))
}

func TestWishService_DeleteAfterFailedCreate_KeepsCountersExact(t *testing.T) {
	drinks := mockUsecase.NewMockDrinkUsecase(t)
	c := newCatalog(t, withDrinkUsecase(drinks))
	ctx := context.Background()
	drink := c.createDrink(t, "Tokaji")

	drinks.EXPECT().ApplyCounterUpdate(mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded).Once()
	drinks.EXPECT().ApplyCounterUpdate(mock.Anything, mock.Anything).RunAndReturn(c.drinks.ApplyCounterUpdate)

	_, err := c.wishes.CreateWish(ctx, "alice", drink.ID)
	var pendingErr *domainerrors.PendingSyncError
	require.ErrorAs(t, err, &pendingErr)

	_, err = c.wishes.DeleteWish(ctx, "alice", drink.ID)
	require.NoError(t, err)

	result, err := c.reconcile.ReplayPending(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, result.Scanned)

	assert.Equal(t, 0, c.drink(t, drink.ID).NumOfWish)
	assert.Empty(t, c.pending(t, drink.ID))
}
