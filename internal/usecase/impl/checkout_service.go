package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CheckoutServiceParams are the dependencies of the checkout service.
type CheckoutServiceParams struct {
	fx.In

	Config   *config.Config
	Cart     usecase.CartUsecase
	Session  usecase.SessionUsecase
	Currency usecase.CurrencyUsecase
	Logger   *slog.Logger
}

type checkoutService struct {
	cart     usecase.CartUsecase
	session  usecase.SessionUsecase
	currency usecase.CurrencyUsecase
	logger   *slog.Logger

	freeShippingThreshold decimal.Decimal
	flatShippingFee       decimal.Decimal
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		cart:                  params.Cart,
		session:               params.Session,
		currency:              params.Currency,
		logger:                params.Logger,
		freeShippingThreshold: decimal.NewFromFloat(params.Config.Checkout.FreeShippingThreshold),
		flatShippingFee:       decimal.NewFromFloat(params.Config.Checkout.FlatShippingFee),
	}
}

// Shipping is free strictly above the threshold.
func (srv *checkoutService) shipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(srv.freeShippingThreshold) {
		return decimal.Zero
	}

	return srv.flatShippingFee
}

func (srv *checkoutService) Summary(ctx context.Context) usecase.CheckoutSummary {
	cart := srv.cart.GetCart(ctx)
	subtotal := cart.Total()
	shipping := srv.shipping(subtotal)
	total := subtotal.Add(shipping)

	lines := make([]usecase.CheckoutLine, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, usecase.CheckoutLine{
			CartLine:          l,
			FormattedPrice:    srv.currency.FormatBasePrice(ctx, l.Price),
			FormattedSubtotal: srv.currency.FormatBasePrice(ctx, l.Subtotal()),
		})
	}

	return usecase.CheckoutSummary{
		Lines:             lines,
		ItemCount:         cart.Count(),
		Currency:          srv.currency.GetCurrency(ctx).Selected,
		Subtotal:          subtotal,
		Shipping:          shipping,
		Total:             total,
		FormattedSubtotal: srv.currency.FormatDisplayPrice(ctx, subtotal),
		FormattedShipping: srv.currency.FormatDisplayPrice(ctx, shipping),
		FormattedTotal:    srv.currency.FormatDisplayPrice(ctx, total),
	}
}

// PlaceOrder simulates an order. Nothing is charged and the cart is left as is. A
// signed-in shopper without a saved address gets shipTo stored on their profile.
func (srv *checkoutService) PlaceOrder(ctx context.Context, shipTo entity.Address) (*usecase.OrderConfirmation, error) {
	logger := requestLogger(ctx, srv.logger)

	summary := srv.Summary(ctx)
	if len(summary.Lines) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	shipTo.PostalCode = strings.TrimSpace(shipTo.PostalCode)
	if !entity.ValidPostalCode(shipTo.PostalCode) {
		return nil, domainerrors.ErrInvalidPostalCode.WithDetails(shipTo.PostalCode)
	}

	session := srv.session.GetSession(ctx)

	saved := false
	if session.IsAuthenticated && session.User != nil && session.User.Address == nil {
		address := shipTo
		saved = srv.session.UpdateUser(ctx, entity.UserPatch{Address: &address})
	}

	confirmation := &usecase.OrderConfirmation{
		OrderID:        uuid.NewString(),
		ShipTo:         shipTo,
		ItemCount:      summary.ItemCount,
		Total:          summary.Total,
		FormattedTotal: summary.FormattedTotal,
		AddressSaved:   saved,
	}
	if session.User != nil {
		confirmation.Email = session.User.Email
	}

	logger.Info("Order placed",
		slog.String("order_id", confirmation.OrderID),
		slog.Int("items", confirmation.ItemCount),
		slog.String("total", confirmation.FormattedTotal),
		slog.Bool("address_saved", saved),
	)

	return confirmation, nil
}
