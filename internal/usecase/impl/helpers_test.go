package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/catalog"
	"storefront/internal/infra/money"
	"storefront/internal/infra/persistence/blob"
	"storefront/internal/infra/persistence/snapshot"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return config.Default()
}

func newTestCatalog(t *testing.T) repository.CatalogRepository {
	t.Helper()
	repo, err := catalog.NewSeedRepository(newTestConfig(), newDiscardLogger())
	require.NoError(t, err)

	return repo
}

func product(t *testing.T, repo repository.CatalogRepository, id entity.ProductID) entity.Product {
	t.Helper()
	p, ok := repo.FindByID(id)
	require.True(t, ok, "product %s missing from seed", id)

	return p
}

// storefront wires every service over one engine, backed by an in-memory bucket.
type storefront struct {
	cfg      *config.Config
	store    repository.KeyValueStore
	gateway  repository.StateGateway
	engine   *Engine
	catalog  repository.CatalogRepository
	rates    *mockService.MockRateSource
	cart     usecase.CartUsecase
	wishlist usecase.WishlistUsecase
	session  usecase.SessionUsecase
	currency usecase.CurrencyUsecase
	checkout usecase.CheckoutUsecase
}

func newStorefront(t *testing.T) *storefront {
	t.Helper()
	store := blob.NewKeyValueStore(memblob.OpenBucket(nil), newDiscardLogger())
	t.Cleanup(func() { _ = store.Close() })

	return newStorefrontOn(t, store, newTestConfig())
}

// newStorefrontOn starts a fresh engine over an existing store, as a restart would.
func newStorefrontOn(t *testing.T, store repository.KeyValueStore, cfg *config.Config) *storefront {
	t.Helper()
	logger := newDiscardLogger()

	sf := &storefront{
		cfg:     cfg,
		store:   store,
		gateway: snapshot.NewGateway(store, logger),
		catalog: newTestCatalog(t),
		rates:   mockService.NewMockRateSource(t),
	}
	sf.engine = NewEngine(cfg, sf.gateway, logger)
	sf.engine.Init(context.Background())

	sf.cart = NewCartService(sf.engine, logger)
	sf.wishlist = NewWishlistService(sf.engine, logger)
	sf.session = NewSessionService(sf.engine, logger)
	sf.currency = NewCurrencyService(CurrencyServiceParams{
		Config:    cfg,
		Engine:    sf.engine,
		Formatter: money.NewFormatter(),
		Rates:     sf.rates,
		Logger:    logger,
	})
	sf.checkout = NewCheckoutService(CheckoutServiceParams{
		Config:   cfg,
		Cart:     sf.cart,
		Session:  sf.session,
		Currency: sf.currency,
		Logger:   logger,
	})

	return sf
}

// restart disposes the engine and boots a new one over the same store.
func (sf *storefront) restart(t *testing.T) *storefront {
	t.Helper()
	require.NoError(t, sf.engine.Dispose(context.Background()))

	return newStorefrontOn(t, sf.store, sf.cfg)
}
