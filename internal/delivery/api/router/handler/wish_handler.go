package handler

import (
	"net/http"

	"sommelier/internal/delivery/api/middleware"
	"sommelier/internal/delivery/api/response"
	"sommelier/internal/domain/entity"
	"sommelier/internal/usecase"

	"github.com/labstack/echo/v4"
)

// WishHandler serves wishlists.
type WishHandler struct {
	uc usecase.WishUsecase
}

// NewWishHandler is the constructor for WishHandler, injected by Fx.
func NewWishHandler(uc usecase.WishUsecase) *WishHandler {
	return &WishHandler{uc: uc}
}

// ListWishes lists wishes, optionally filtered by user_id and drink_id.
func (h *WishHandler) ListWishes(c echo.Context) error {
	drinkID, err := optionalUUIDQuery(c, "drink_id")
	if err != nil {
		return err
	}

	wishes, err := h.uc.FindWishes(c.Request().Context(), entity.WishQuery{
		UserID:  entity.UserID(c.QueryParam("user_id")),
		DrinkID: drinkID,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, mapSlice(wishes, newWishResponse))
}

// CreateWish adds the drink to the authenticated user's wishlist.
func (h *WishHandler) CreateWish(c echo.Context) error {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	drinkID, err := uuidParam(c, "drinkId")
	if err != nil {
		return err
	}

	wish, err := h.uc.CreateWish(c.Request().Context(), userID, drinkID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newWishResponse(wish))
}

// DeleteWish removes the drink from the authenticated user's wishlist.
func (h *WishHandler) DeleteWish(c echo.Context) error {
	userID, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	drinkID, err := uuidParam(c, "drinkId")
	if err != nil {
		return err
	}

	if _, err := h.uc.DeleteWish(c.Request().Context(), userID, drinkID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
