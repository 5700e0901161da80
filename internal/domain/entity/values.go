// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"unicode/utf8"

	domainerrors "sommelier/internal/domain/errors"

	"github.com/google/uuid"
)

const (
	MinRating = 0
	MaxRating = 5

	MaxUserIDLength     = 30
	MaxUserNameLength   = 30
	MaxReviewCommentLen = 300
)

// UserID is the login handle chosen by a user. It is 1 to 30 characters long.
type UserID string

// NewUserID validates raw and returns it as a UserID.
func NewUserID(raw string) (UserID, error) {
	n := utf8.RuneCountInString(raw)
	if n < 1 || n > MaxUserIDLength {
		return "", domainerrors.Invalid("user id must be between 1 and 30 characters")
	}

	return UserID(raw), nil
}

// String returns the string representation of the UserID.
func (u UserID) String() string {
	return string(u)
}

// ReviewRating is the star rating a single review gives, an integer in [0,5].
type ReviewRating int

// NewReviewRating validates value and returns it as a ReviewRating.
func NewReviewRating(value int) (ReviewRating, error) {
	if value < MinRating || value > MaxRating {
		return 0, domainerrors.Invalid("rating must be between 0 and 5")
	}

	return ReviewRating(value), nil
}

// DrinkRating is the running average rating of a drink, a float in [0,5].
type DrinkRating float64

// NewDrinkRating validates value and returns it as a DrinkRating.
func NewDrinkRating(value float64) (DrinkRating, error) {
	if value < MinRating || value > MaxRating {
		return 0, domainerrors.Invalid("drink rating must be between 0 and 5")
	}

	return DrinkRating(value), nil
}

// clampRating keeps float error from pushing an average outside [0,5].
func clampRating(value float64) DrinkRating {
	switch {
	case value < MinRating:
		return MinRating
	case value > MaxRating:
		return MaxRating
	default:
		return DrinkRating(value)
	}
}

// DrinkType categorizes drinks in the catalog.
type DrinkType string

const (
	DrinkTypeAll    DrinkType = "all"
	DrinkTypeBeer   DrinkType = "beer"
	DrinkTypeWine   DrinkType = "wine"
	DrinkTypeLiquor DrinkType = "liquor"
	DrinkTypeSake   DrinkType = "sake"
	DrinkTypeSoju   DrinkType = "soju"
	DrinkTypeEtc    DrinkType = "etc"
)

// ParseDrinkType maps a label onto a DrinkType. Unknown labels map to DrinkTypeAll.
func ParseDrinkType(label string) DrinkType {
	switch t := DrinkType(strings.ToLower(strings.TrimSpace(label))); t {
	case DrinkTypeBeer, DrinkTypeWine, DrinkTypeLiquor, DrinkTypeSake, DrinkTypeSoju, DrinkTypeEtc:
		return t
	default:
		return DrinkTypeAll
	}
}

// String returns the string representation of the DrinkType.
func (t DrinkType) String() string {
	return string(t)
}

// OrderType is the direction of a drink listing.
type OrderType string

const (
	OrderDesc OrderType = "desc"
	OrderAsc  OrderType = "asc"
)

// ParseOrderType maps a label onto an OrderType. Unknown labels map to OrderDesc.
func ParseOrderType(label string) OrderType {
	if OrderType(strings.ToLower(strings.TrimSpace(label))) == OrderAsc {
		return OrderAsc
	}

	return OrderDesc
}

// String returns the string representation of the OrderType.
func (o OrderType) String() string {
	return string(o)
}

// FilterType is the field a drink listing is ordered by.
type FilterType string

const (
	FilterReviewCount FilterType = "review_count"
	FilterRating      FilterType = "rating"
	FilterWishCount   FilterType = "wish_count"
)

// ParseFilterType maps a label onto a FilterType. Unknown labels map to FilterReviewCount.
func ParseFilterType(label string) FilterType {
	switch f := FilterType(strings.ToLower(strings.TrimSpace(label))); f {
	case FilterRating, FilterWishCount:
		return f
	default:
		return FilterReviewCount
	}
}

// String returns the string representation of the FilterType.
func (f FilterType) String() string {
	return string(f)
}

// DrinkQuery selects and orders drinks. The zero value lists every drink by review count, descending.
type DrinkQuery struct {
	Type   DrinkType
	Filter FilterType
	Order  OrderType
}

// Normalize fills unset fields with their defaults.
func (q DrinkQuery) Normalize() DrinkQuery {
	if q.Type == "" {
		q.Type = DrinkTypeAll
	}
	if q.Filter == "" {
		q.Filter = FilterReviewCount
	}
	if q.Order == "" {
		q.Order = OrderDesc
	}

	return q
}

// ReviewQuery filters reviews by author and/or drink. Empty fields do not filter.
type ReviewQuery struct {
	UserID  UserID
	DrinkID uuid.UUID
}

// WishQuery filters wishes by owner and/or drink. Empty fields do not filter.
type WishQuery struct {
	UserID  UserID
	DrinkID uuid.UUID
}
