package entity

import (
	"strings"
	"testing"

	domainerrors "sommelier/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserID(t *testing.T) {
	_, err := NewUserID("")
	assert.Equal(t, domainerrors.KindInvalid, domainerrors.KindOf(err))

	_, err = NewUserID(strings.Repeat("a", 31))
	assert.Equal(t, domainerrors.KindInvalid, domainerrors.KindOf(err))

	id, err := NewUserID(strings.Repeat("가", 30))
	require.NoError(t, err)
	assert.Equal(t, 30, len([]rune(id.String())))
}

func TestNewReviewRating(t *testing.T) {
	for _, v := range []int{0, 3, 5} {
		r, err := NewReviewRating(v)
		require.NoError(t, err)
		assert.Equal(t, ReviewRating(v), r)
	}

	for _, v := range []int{-1, 6} {
		_, err := NewReviewRating(v)
		assert.Equal(t, domainerrors.KindInvalid, domainerrors.KindOf(err))
	}
}

func TestNewDrinkRating(t *testing.T) {
	_, err := NewDrinkRating(5.01)
	assert.Error(t, err)

	r, err := NewDrinkRating(4.5)
	require.NoError(t, err)
	assert.Equal(t, DrinkRating(4.5), r)
}

func TestParseDrinkType(t *testing.T) {
	assert.Equal(t, DrinkTypeWine, ParseDrinkType("WINE"))
	assert.Equal(t, DrinkTypeSoju, ParseDrinkType(" soju "))
	assert.Equal(t, DrinkTypeAll, ParseDrinkType("whisky"))
	assert.Equal(t, DrinkTypeAll, ParseDrinkType(""))
}

func TestParseOrderAndFilterType(t *testing.T) {
	assert.Equal(t, OrderAsc, ParseOrderType("asc"))
	assert.Equal(t, OrderDesc, ParseOrderType("sideways"))
	assert.Equal(t, FilterRating, ParseFilterType("rating"))
	assert.Equal(t, FilterWishCount, ParseFilterType("Wish_Count"))
	assert.Equal(t, FilterReviewCount, ParseFilterType("price"))
}

func TestDrinkQuery_Normalize(t *testing.T) {
	q := DrinkQuery{}.Normalize()

	assert.Equal(t, DrinkQuery{Type: DrinkTypeAll, Filter: FilterReviewCount, Order: OrderDesc}, q)
}

func TestReview_Edit(t *testing.T) {
	r := &Review{Rating: 5, Comment: "great"}

	old := r.Edit(2, "meh", r.CreatedAt.AddDate(0, 0, 1))

	assert.Equal(t, ReviewRating(5), old)
	assert.Equal(t, ReviewRating(2), r.Rating)
	assert.Equal(t, "meh", r.Comment)
	assert.True(t, r.UpdatedAt.After(r.CreatedAt))
}

func TestValidateComment(t *testing.T) {
	assert.NoError(t, ValidateComment(strings.Repeat("x", 300)))
	assert.Error(t, ValidateComment(strings.Repeat("x", 301)))
}

func TestValidateDrinkName(t *testing.T) {
	assert.NoError(t, ValidateDrinkName("Chamisul"))
	assert.Error(t, ValidateDrinkName("   "))
	assert.Error(t, ValidateDrinkName(strings.Repeat("x", 101)))
}
