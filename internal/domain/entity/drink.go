package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	domainerrors "sommelier/internal/domain/errors"

	"github.com/google/uuid"
)

// Drink is a catalog entry. Its rating and counters are a projection of the reviews and
// wishes that reference it and change only through the counter operations below.
type Drink struct {
	ID           uuid.UUID   // The Global Unique Identifier (GUID) for the drink.
	Name         string      // The drink's display name.
	ImageURL     string      // URL of the drink's picture.
	Type         DrinkType   // Catalog category.
	AvgRating    DrinkRating // Mean of all contributing review ratings, 0 when there are none.
	NumOfReviews int         // Number of reviews contributing to AvgRating.
	NumOfWish    int         // Number of users who wish for this drink.
	CreatedAt    time.Time   // Timestamp of when the drink was added to the catalog.
	UpdatedAt    time.Time   // Timestamp of the last modification.
}

// MaxDrinkNameLength bounds the display name of a drink.
const MaxDrinkNameLength = 100

// ValidateDrinkName checks that a drink name is present and within the length limit.
func ValidateDrinkName(name string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	if n == 0 || n > MaxDrinkNameLength {
		return domainerrors.Invalid("drink name must be between 1 and 100 characters")
	}

	return nil
}

// AddRating folds a new review rating into the average.
func (d *Drink) AddRating(rating ReviewRating) {
	n := float64(d.NumOfReviews)
	d.AvgRating = clampRating((float64(d.AvgRating)*n + float64(rating)) / (n + 1))
	d.NumOfReviews++
}

// UpdateRating replaces one contributing rating with another. The count is unchanged.
func (d *Drink) UpdateRating(oldRating, newRating ReviewRating) error {
	if d.NumOfReviews <= 0 {
		return domainerrors.ErrDrinkCounterDrift
	}

	n := float64(d.NumOfReviews)
	d.AvgRating = clampRating((float64(d.AvgRating)*n - float64(oldRating) + float64(newRating)) / n)

	return nil
}

// DeleteRating removes one contributing rating. It is a no-op when no ratings remain.
func (d *Drink) DeleteRating(rating ReviewRating) {
	if d.NumOfReviews <= 0 {
		return
	}

	remaining := d.NumOfReviews - 1
	if remaining > 0 {
		n := float64(d.NumOfReviews)
		d.AvgRating = clampRating((float64(d.AvgRating)*n - float64(rating)) / float64(remaining))
	} else {
		d.AvgRating = 0
	}
	d.NumOfReviews = remaining
}

// AddWish increments the wish counter.
func (d *Drink) AddWish() {
	d.NumOfWish++
}

// DeleteWish decrements the wish counter, never below zero.
func (d *Drink) DeleteWish() {
	if d.NumOfWish > 0 {
		d.NumOfWish--
	}
}

// Apply runs the counter operation recorded in update.
func (d *Drink) Apply(update *CounterUpdate) error {
	switch update.Op {
	case CounterOpAddRating:
		d.AddRating(update.NewRating)
	case CounterOpUpdateRating:
		return d.UpdateRating(update.OldRating, update.NewRating)
	case CounterOpDeleteRating:
		d.DeleteRating(update.OldRating)
	case CounterOpAddWish:
		d.AddWish()
	case CounterOpDeleteWish:
		d.DeleteWish()
	default:
		return domainerrors.ErrUnknownCounterOp.WithDetails(string(update.Op))
	}

	return nil
}

// Recount overwrites the counters with totals computed from the review and wish tables.
func (d *Drink) Recount(summary RatingSummary, wishes int) {
	d.NumOfReviews = summary.Count
	if summary.Count > 0 {
		d.AvgRating = clampRating(float64(summary.Sum) / float64(summary.Count))
	} else {
		d.AvgRating = 0
	}
	d.NumOfWish = wishes
}

// RatingSummary is the count and sum of the ratings stored for one drink.
type RatingSummary struct {
	Count int
	Sum   int
}
