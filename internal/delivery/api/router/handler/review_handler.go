package handler

import (
	"net/http"

	"sommelier/internal/delivery/api/middleware"
	"sommelier/internal/delivery/api/response"
	"sommelier/internal/domain/entity"
	"sommelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CreateReviewRequest is the body of POST /api/v1/reviews.
type CreateReviewRequest struct {
	DrinkID uuid.UUID `json:"drink_id" validate:"required"`
	Rating  *int      `json:"rating" validate:"required"`
	Comment string    `json:"comment"`
}

// UpdateReviewRequest is the body of PUT /api/v1/reviews/:id.
type UpdateReviewRequest struct {
	Rating  *int   `json:"rating" validate:"required"`
	Comment string `json:"comment"`
}

// ReviewHandler serves reviews.
type ReviewHandler struct {
	uc usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// ListReviews lists reviews, optionally filtered by user_id and drink_id.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	drinkID, err := optionalUUIDQuery(c, "drink_id")
	if err != nil {
		return err
	}

	reviews, err := h.uc.FindReviews(c.Request().Context(), entity.ReviewQuery{
		UserID:  entity.UserID(c.QueryParam("user_id")),
		DrinkID: drinkID,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, mapSlice(reviews, newReviewResponse))
}

// GetReview returns one review.
func (h *ReviewHandler) GetReview(c echo.Context) error {
	reviewID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	review, err := h.uc.FindReview(c.Request().Context(), reviewID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newReviewResponse(review))
}

// CreateReview reviews a drink as the authenticated user.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req CreateReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.uc.CreateReview(c.Request().Context(), &usecase.CreateReviewInput{
		UserID:  userID,
		DrinkID: req.DrinkID,
		Rating:  *req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newReviewResponse(review))
}

// UpdateReview edits the authenticated user's review.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	reviewID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.uc.UpdateReview(c.Request().Context(), &usecase.UpdateReviewInput{
		ReviewID: reviewID,
		UserID:   userID,
		Rating:   *req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newReviewResponse(review))
}

// DeleteReview deletes the authenticated user's review.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	reviewID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.uc.DeleteReview(c.Request().Context(), &usecase.DeleteReviewInput{ReviewID: reviewID, UserID: userID}); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
