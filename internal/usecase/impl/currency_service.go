package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CurrencyServiceParams are the dependencies of the currency service.
type CurrencyServiceParams struct {
	fx.In

	Config    *config.Config
	Engine    *Engine
	Formatter service.PriceFormatter
	Rates     service.RateSource
	Logger    *slog.Logger
}

type currencyService struct {
	engine       *Engine
	formatter    service.PriceFormatter
	rates        service.RateSource
	supported    []entity.CurrencyCode
	fetchTimeout time.Duration
	logger       *slog.Logger
}

// NewCurrencyService is the constructor for currencyService.
func NewCurrencyService(params CurrencyServiceParams) usecase.CurrencyUsecase {
	supported := make([]entity.CurrencyCode, 0, len(params.Config.Currency.Supported))
	for _, code := range params.Config.Currency.Supported {
		supported = append(supported, entity.CurrencyCode(code))
	}

	return &currencyService{
		engine:       params.Engine,
		formatter:    params.Formatter,
		rates:        params.Rates,
		supported:    supported,
		fetchTimeout: params.Config.Currency.FetchTimeout,
		logger:       params.Logger,
	}
}

func (srv *currencyService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

func (srv *currencyService) SetCurrency(ctx context.Context, code entity.CurrencyCode) {
	srv.engine.mutate(ctx, "set_currency", func(s *entity.State) bool {
		if s.Currency.Selected == code {
			return false
		}
		s.Currency.Selected = code

		return true
	})

	srv.log(ctx).Debug("Display currency selected", slog.String("currency", string(code)))
}

func (srv *currencyService) GetCurrency(ctx context.Context) entity.CurrencyState {
	var state entity.CurrencyState
	srv.engine.view(func(s *entity.State) {
		state = s.Currency.Clone()
	})

	return state
}

func (srv *currencyService) SupportedCurrencies(ctx context.Context) []entity.CurrencyCode {
	return append([]entity.CurrencyCode(nil), srv.supported...)
}

func (srv *currencyService) ConvertPrice(ctx context.Context, amount decimal.Decimal) decimal.Decimal {
	var converted decimal.Decimal
	srv.engine.view(func(s *entity.State) {
		converted = s.Currency.Convert(amount)
	})

	return converted
}

func (srv *currencyService) FormatDisplayPrice(ctx context.Context, amount decimal.Decimal) string {
	var (
		converted decimal.Decimal
		code      entity.CurrencyCode
	)
	srv.engine.view(func(s *entity.State) {
		converted = s.Currency.Convert(amount)
		code = s.Currency.Selected
	})

	return srv.formatter.Format(converted, code)
}

func (srv *currencyService) FormatBasePrice(ctx context.Context, amount decimal.Decimal) string {
	var base entity.CurrencyCode
	srv.engine.view(func(s *entity.State) {
		base = s.Currency.Base
	})

	return srv.formatter.Format(amount, base)
}

// RefreshRates fetches in the background. The fetch outlives ctx and is bounded
// only by the configured fetch timeout. A failed fetch leaves the table as it was.
func (srv *currencyService) RefreshRates(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	logger := srv.log(ctx)

	var base entity.CurrencyCode
	srv.engine.view(func(s *entity.State) {
		base = s.Currency.Base
	})

	go func() {
		defer close(done)

		fetchCtx := context.WithoutCancel(ctx)
		if srv.fetchTimeout > 0 {
			var cancel context.CancelFunc
			fetchCtx, cancel = context.WithTimeout(fetchCtx, srv.fetchTimeout)
			defer cancel()
		}

		fetched, err := srv.rates.FetchRates(fetchCtx, base)
		if err != nil {
			logger.Warn("Exchange rate refresh failed, keeping current rates",
				slog.String("base", string(base)),
				slog.Any("error", err),
			)

			return
		}

		srv.engine.apply(func(s *entity.State) {
			s.Currency.MergeRates(fetched)
		})

		logger.Info("Exchange rates refreshed",
			slog.String("base", string(base)),
			slog.Int("count", len(fetched)),
		)
	}()

	return done
}
