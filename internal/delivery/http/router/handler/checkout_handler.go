package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlaceOrderRequest is the body of POST /checkout.
type PlaceOrderRequest struct {
	Address AddressRequest `json:"address" validate:"required"`
}

// CheckoutHandler holds dependencies for checkout handlers.
type CheckoutHandler struct {
	checkout usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(checkout usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// Summary handles GET /checkout/summary
func (h *CheckoutHandler) Summary(c echo.Context) error {
	return response.OK(c, h.checkout.Summary(c.Request().Context()), "")
}

// PlaceOrder handles POST /checkout
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	var input PlaceOrderRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(err)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	confirmation, err := h.checkout.PlaceOrder(c.Request().Context(), input.Address.toEntity())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, confirmation, "Order placed")
}
