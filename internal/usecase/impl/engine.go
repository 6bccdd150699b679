// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// Engine owns the shopper's state. Every read and write goes through its lock,
// so operations are applied one at a time in arrival order.
type Engine struct {
	mu       sync.Mutex
	state    entity.State
	defaults entity.Snapshot
	gateway  repository.StateGateway
	logger   *slog.Logger
	loaded   bool
	disposed bool
}

// NewEngine seeds an engine with an empty cart and wishlist, an anonymous session and
// the configured fallback rates. Call Init to load persisted state.
func NewEngine(cfg *config.Config, gateway repository.StateGateway, logger *slog.Logger) *Engine {
	state := entity.State{
		Currency: entity.NewCurrencyState(
			entity.CurrencyCode(cfg.Currency.Base),
			entity.CurrencyCode(cfg.Currency.Default),
			fallbackRates(cfg.Currency.FallbackRates),
		),
	}

	return &Engine{
		state:    state,
		defaults: state.Snapshot(),
		gateway:  gateway,
		logger:   logger.With(slog.String("component", "engine")),
	}
}

func fallbackRates(rates map[string]float64) entity.RateTable {
	table := make(entity.RateTable, len(rates))
	for code, rate := range rates {
		// Codes set through environment overrides arrive lowercased.
		table[entity.CurrencyCode(strings.ToUpper(code))] = decimal.NewFromFloat(rate)
	}

	return table
}

// Init replaces the seeded state with whatever the gateway can load. Entries it
// cannot read keep their seeded value. Calling Init again is a no-op.
func (e *Engine) Init(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.loaded {
		return
	}

	e.state.Restore(e.gateway.Load(ctx, e.defaults))
	e.loaded = true

	e.logger.Info("Shopper state loaded",
		slog.Int("cart_lines", len(e.state.Cart.Lines)),
		slog.Int("wishlist_items", e.state.Wishlist.Len()),
		slog.Bool("authenticated", e.state.Session.IsAuthenticated),
		slog.String("currency", string(e.state.Currency.Selected)),
	)
}

// Dispose writes a final snapshot. Later mutations still apply in memory but are
// no longer persisted.
func (e *Engine) Dispose(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.disposed {
		return nil
	}
	e.disposed = true

	if err := e.gateway.Save(ctx, e.state.Snapshot()); err != nil {
		e.logger.Warn("Final state save failed", slog.Any("error", err))
	}

	return nil
}

// mutate applies fn under the lock. When fn reports a change the new snapshot is
// saved before the lock is released, so stored snapshots follow mutation order.
// Save failures are logged and dropped.
func (e *Engine) mutate(ctx context.Context, op string, fn func(s *entity.State) bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !fn(&e.state) {
		return false
	}

	if e.disposed {
		return true
	}

	if err := e.gateway.Save(ctx, e.state.Snapshot()); err != nil {
		e.logger.Warn("State save failed, continuing in memory",
			slog.String("operation", op),
			slog.Any("error", err),
		)
	}

	return true
}

// apply changes state that is not persisted, such as the rate table.
func (e *Engine) apply(fn func(s *entity.State)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	fn(&e.state)
}

// view runs fn under the lock. fn must not retain references into the state.
func (e *Engine) view(fn func(s *entity.State)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	fn(&e.state)
}

// Snapshot returns a copy of the whole state.
func (e *Engine) Snapshot() entity.State {
	var out entity.State
	e.view(func(s *entity.State) {
		out = s.Clone()
	})

	return out
}

// EngineParams are the dependencies of StartEngine.
type EngineParams struct {
	fx.In

	Lc       fx.Lifecycle
	Ctx      context.Context
	Config   *config.Config
	Engine   *Engine
	Currency usecase.CurrencyUsecase
}

// StartEngine loads persisted state before anything can serve requests, kicks off
// the first rate refresh and registers the final save on shutdown.
func StartEngine(params EngineParams) {
	params.Engine.Init(params.Ctx)

	if params.Config.Currency.RefreshOnStart {
		params.Currency.RefreshRates(params.Ctx)
	}

	params.Lc.Append(fx.Hook{
		OnStop: params.Engine.Dispose,
	})
}
