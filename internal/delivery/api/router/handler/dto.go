package handler

import (
	"time"

	"sommelier/internal/domain/entity"
	domainerrors "sommelier/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DrinkResponse is the public representation of a drink.
type DrinkResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ImageURL     string    `json:"image_url"`
	Type         string    `json:"type"`
	AvgRating    float64   `json:"avg_rating"`
	NumOfReviews int       `json:"num_of_reviews"`
	NumOfWish    int       `json:"num_of_wish"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newDrinkResponse(d *entity.Drink) *DrinkResponse {
	return &DrinkResponse{
		ID:           d.ID,
		Name:         d.Name,
		ImageURL:     d.ImageURL,
		Type:         d.Type.String(),
		AvgRating:    float64(d.AvgRating),
		NumOfReviews: d.NumOfReviews,
		NumOfWish:    d.NumOfWish,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// ReviewResponse is the public representation of a review.
type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	DrinkID   uuid.UUID `json:"drink_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newReviewResponse(r *entity.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        r.ID,
		DrinkID:   r.DrinkID,
		UserID:    r.UserID.String(),
		Rating:    int(r.Rating),
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// WishResponse is the public representation of a wish.
type WishResponse struct {
	ID        uuid.UUID `json:"id"`
	DrinkID   uuid.UUID `json:"drink_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func newWishResponse(w *entity.Wish) *WishResponse {
	return &WishResponse{
		ID:        w.ID,
		DrinkID:   w.DrinkID,
		UserID:    w.UserID.String(),
		CreatedAt: w.CreatedAt,
	}
}

// UserResponse is a user's public profile. The password hash never leaves the service.
type UserResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func newUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID.String(),
		Name:        u.Name,
		Description: u.Description,
		ImageURL:    u.ImageURL,
		CreatedAt:   u.CreatedAt,
	}
}

// CounterUpdateResponse describes a counter change a drink has not received yet.
type CounterUpdateResponse struct {
	ID        uuid.UUID `json:"id"`
	DrinkID   uuid.UUID `json:"drink_id"`
	Op        string    `json:"op"`
	Attempts  int       `json:"attempts"`
	CreatedAt time.Time `json:"created_at"`
}

func newCounterUpdateResponse(u *entity.CounterUpdate) *CounterUpdateResponse {
	return &CounterUpdateResponse{
		ID:        u.ID,
		DrinkID:   u.DrinkID,
		Op:        u.Op.String(),
		Attempts:  u.Attempts,
		CreatedAt: u.CreatedAt,
	}
}

func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}

// uuidParam parses a path parameter as a UUID.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.Invalid(name + " must be a UUID")
	}

	return id, nil
}

// optionalUUIDQuery parses an optional query parameter as a UUID.
func optionalUUIDQuery(c echo.Context, name string) (uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.Invalid(name + " must be a UUID")
	}

	return id, nil
}

// bindAndValidate decodes the request into req and runs the struct validation rules.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.Invalid("malformed request body")
	}

	return c.Validate(req)
}
