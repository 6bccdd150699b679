// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	WishlistHandler *handler.WishlistHandler
	SessionHandler  *handler.SessionHandler
	CurrencyHandler *handler.CurrencyHandler
	CheckoutHandler *handler.CheckoutHandler

	RequestID *middleware.RequestIDMiddleware
	Errors    *middleware.ErrorMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes installs the error handler, the request id middleware and every API route.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.HTTPErrorHandler = r.params.Errors.HandleHTTPError
	e.Use(r.params.RequestID.Process)

	e.GET("/health", handler.HealthCheck)

	catalog := e.Group("/catalog")
	{
		catalog.GET("/products", r.params.CatalogHandler.ListProducts)
		catalog.GET("/products/:id", r.params.CatalogHandler.GetProduct)
		catalog.GET("/categories", r.params.CatalogHandler.ListCategories)
	}

	cart := e.Group("/cart")
	{
		cart.GET("", r.params.CartHandler.GetCart)
		cart.POST("/lines", r.params.CartHandler.AddLine)
		cart.PATCH("/lines/:productId/:size", r.params.CartHandler.UpdateLine)
		cart.DELETE("/lines/:productId/:size", r.params.CartHandler.RemoveLine)
	}

	wishlist := e.Group("/wishlist")
	{
		wishlist.GET("", r.params.WishlistHandler.GetWishlist)
		wishlist.POST("/toggle", r.params.WishlistHandler.Toggle)
		wishlist.GET("/:productId", r.params.WishlistHandler.Contains)
	}

	session := e.Group("/session")
	{
		session.GET("", r.params.SessionHandler.GetSession)
		session.POST("/login", r.params.SessionHandler.Login)
		session.POST("/register", r.params.SessionHandler.Register)
		session.POST("/logout", r.params.SessionHandler.Logout)
		session.PATCH("/user", r.params.SessionHandler.UpdateUser)
	}

	currency := e.Group("/currency")
	{
		currency.GET("", r.params.CurrencyHandler.GetCurrency)
		currency.PUT("", r.params.CurrencyHandler.SetCurrency)
		currency.POST("/refresh", r.params.CurrencyHandler.RefreshRates)
		currency.POST("/format", r.params.CurrencyHandler.FormatPrice)
	}

	checkout := e.Group("/checkout")
	{
		checkout.GET("/summary", r.params.CheckoutHandler.Summary)
		checkout.POST("", r.params.CheckoutHandler.PlaceOrder)
	}
}
