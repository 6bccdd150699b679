package handler

import (
	"log/slog"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// SetCurrencyRequest is the body of PUT /currency.
type SetCurrencyRequest struct {
	Code entity.CurrencyCode `json:"code" validate:"required"`
}

// FormatPriceRequest is the body of POST /currency/format.
type FormatPriceRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// CurrencyView describes the display currency and the rates behind it.
type CurrencyView struct {
	Selected  entity.CurrencyCode   `json:"selected"`
	Base      entity.CurrencyCode   `json:"base"`
	Supported []entity.CurrencyCode `json:"supported"`
	Rates     entity.RateTable      `json:"rates"`
}

// CurrencyHandler holds dependencies for currency handlers.
type CurrencyHandler struct {
	currency usecase.CurrencyUsecase
	logger   *slog.Logger
}

// NewCurrencyHandler is the constructor for CurrencyHandler, injected by Fx.
func NewCurrencyHandler(currency usecase.CurrencyUsecase, logger *slog.Logger) *CurrencyHandler {
	return &CurrencyHandler{
		currency: currency,
		logger:   logger,
	}
}

func (h *CurrencyHandler) view(c echo.Context) CurrencyView {
	ctx := c.Request().Context()
	state := h.currency.GetCurrency(ctx)

	return CurrencyView{
		Selected:  state.Selected,
		Base:      state.Base,
		Supported: h.currency.SupportedCurrencies(ctx),
		Rates:     state.Rates,
	}
}

// GetCurrency handles GET /currency
func (h *CurrencyHandler) GetCurrency(c echo.Context) error {
	return response.OK(c, h.view(c), "")
}

// SetCurrency handles PUT /currency. Codes are stored as sent.
func (h *CurrencyHandler) SetCurrency(c echo.Context) error {
	var input SetCurrencyRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(err)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	h.currency.SetCurrency(c.Request().Context(), input.Code)

	return response.OK(c, h.view(c), "")
}

// RefreshRates handles POST /currency/refresh. The fetch continues after the response.
func (h *CurrencyHandler) RefreshRates(c echo.Context) error {
	h.currency.RefreshRates(c.Request().Context())

	return response.Accepted(c, "Exchange rate refresh started")
}

// FormatPrice handles POST /currency/format
func (h *CurrencyHandler) FormatPrice(c echo.Context) error {
	var input FormatPriceRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(err)
	}

	ctx := c.Request().Context()

	return response.OK(c, map[string]any{
		"amount":    input.Amount,
		"converted": h.currency.ConvertPrice(ctx, input.Amount),
		"display":   h.currency.FormatDisplayPrice(ctx, input.Amount),
		"base":      h.currency.FormatBasePrice(ctx, input.Amount),
	}, "")
}
