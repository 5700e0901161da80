package handler

import (
	"net/http"

	"sommelier/internal/delivery/api/response"
	"sommelier/internal/domain/entity"
	"sommelier/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DrinkRequest is the body of POST /api/v1/drinks and PUT /api/v1/drinks/:id.
// Counters are not part of it; they only change through reviews and wishes.
type DrinkRequest struct {
	Name     string `json:"name" validate:"required"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
	Type     string `json:"type"`
}

// DrinkHandler serves the drink catalog.
type DrinkHandler struct {
	drinks    usecase.DrinkUsecase
	reconcile usecase.ReconcileUsecase
}

// NewDrinkHandler is the constructor for DrinkHandler, injected by Fx.
func NewDrinkHandler(drinks usecase.DrinkUsecase, reconcile usecase.ReconcileUsecase) *DrinkHandler {
	return &DrinkHandler{drinks: drinks, reconcile: reconcile}
}

// ListDrinks lists drinks. Query parameters type, filter and order fall back to
// all, review_count and desc when missing or unknown.
func (h *DrinkHandler) ListDrinks(c echo.Context) error {
	query := entity.DrinkQuery{
		Type:   entity.ParseDrinkType(c.QueryParam("type")),
		Filter: entity.ParseFilterType(c.QueryParam("filter")),
		Order:  entity.ParseOrderType(c.QueryParam("order")),
	}

	drinks, err := h.drinks.FindDrinks(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, mapSlice(drinks, newDrinkResponse))
}

// GetDrink returns one drink.
func (h *DrinkHandler) GetDrink(c echo.Context) error {
	drinkID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	drink, err := h.drinks.FindDrink(c.Request().Context(), drinkID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newDrinkResponse(drink))
}

// CreateDrink adds a drink to the catalog.
func (h *DrinkHandler) CreateDrink(c echo.Context) error {
	var req DrinkRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	drink, err := h.drinks.CreateDrink(c.Request().Context(), &usecase.CreateDrinkInput{
		Name:     req.Name,
		ImageURL: req.ImageURL,
		Type:     entity.ParseDrinkType(req.Type),
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newDrinkResponse(drink))
}

// UpdateDrink changes a drink's catalog fields.
func (h *DrinkHandler) UpdateDrink(c echo.Context) error {
	drinkID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req DrinkRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	drink, err := h.drinks.UpdateDrink(c.Request().Context(), &usecase.UpdateDrinkInput{
		DrinkID:  drinkID,
		Name:     req.Name,
		ImageURL: req.ImageURL,
		Type:     entity.ParseDrinkType(req.Type),
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newDrinkResponse(drink))
}

// DeleteDrink removes a drink nobody has reviewed.
func (h *DrinkHandler) DeleteDrink(c echo.Context) error {
	drinkID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.drinks.DeleteDrink(c.Request().Context(), drinkID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// GetDrinkQR returns a PNG QR code linking to the drink.
func (h *DrinkHandler) GetDrinkQR(c echo.Context) error {
	drinkID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	png, err := h.drinks.GenerateShareQR(c.Request().Context(), drinkID)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListPendingUpdates lists the counter updates the drink has not received yet.
func (h *DrinkHandler) ListPendingUpdates(c echo.Context) error {
	drinkID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	pending, err := h.reconcile.PendingForDrink(c.Request().Context(), drinkID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, mapSlice(pending, newCounterUpdateResponse))
}

// RecountDrink rebuilds the drink's counters from its stored reviews and wishes.
func (h *DrinkHandler) RecountDrink(c echo.Context) error {
	drinkID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	drink, err := h.reconcile.RecountDrink(c.Request().Context(), drinkID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newDrinkResponse(drink))
}
