// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sommelier/config"
	"sommelier/internal/delivery/api/middleware"
	"sommelier/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AuthHandler    *handler.AuthHandler
	DrinkHandler   *handler.DrinkHandler
	ReviewHandler  *handler.ReviewHandler
	WishHandler    *handler.WishHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	authHandler    *handler.AuthHandler
	drinkHandler   *handler.DrinkHandler
	reviewHandler  *handler.ReviewHandler
	wishHandler    *handler.WishHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		authHandler:    params.AuthHandler,
		drinkHandler:   params.DrinkHandler,
		reviewHandler:  params.ReviewHandler,
		wishHandler:    params.WishHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public reads and account creation
	e.POST("/users", r.userHandler.RegisterUser)
	e.GET("/users/:id", r.userHandler.GetUser)
	e.POST("/auth/token", r.authHandler.IssueToken)

	e.GET("/drinks", r.drinkHandler.ListDrinks)
	e.GET("/drinks/:id", r.drinkHandler.GetDrink)
	e.GET("/drinks/:id/qr", r.drinkHandler.GetDrinkQR)
	e.GET("/drinks/:id/pending-updates", r.drinkHandler.ListPendingUpdates)

	e.GET("/reviews", r.reviewHandler.ListReviews)
	e.GET("/reviews/:id", r.reviewHandler.GetReview)
	e.GET("/wishes", r.wishHandler.ListWishes)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.PUT("/me", r.userHandler.UpdateMe)
		usersGroup.DELETE("/me", r.userHandler.DeleteMe)
	}

	drinksGroup := apiV1.Group("/drinks")
	{
		drinksGroup.POST("", r.drinkHandler.CreateDrink)
		drinksGroup.PUT("/:id", r.drinkHandler.UpdateDrink)
		drinksGroup.DELETE("/:id", r.drinkHandler.DeleteDrink)
		drinksGroup.POST("/:id/recount", r.drinkHandler.RecountDrink)
	}

	reviewsGroup := apiV1.Group("/reviews")
	{
		reviewsGroup.POST("", r.reviewHandler.CreateReview)
		reviewsGroup.PUT("/:id", r.reviewHandler.UpdateReview)
		reviewsGroup.DELETE("/:id", r.reviewHandler.DeleteReview)
	}

	wishesGroup := apiV1.Group("/wishes")
	{
		wishesGroup.POST("/drinks/:drinkId", r.wishHandler.CreateWish)
		wishesGroup.DELETE("/drinks/:drinkId", r.wishHandler.DeleteWish)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		testGroup.Use(r.authMiddleware.Authenticate)
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		}
	}
}
