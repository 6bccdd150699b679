package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

// catalogService answers catalog queries and memoizes their results. The catalog
// never changes after start, so cached results never go stale.
type catalogService struct {
	repo   repository.CatalogRepository
	logger *slog.Logger

	mu        sync.RWMutex
	cache     map[entity.CatalogQuery][]entity.Product
	cacheSize int
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(cfg *config.Config, repo repository.CatalogRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		repo:      repo,
		logger:    logger,
		cache:     make(map[entity.CatalogQuery][]entity.Product),
		cacheSize: cfg.Catalog.QueryCacheSize,
	}
}

func (srv *catalogService) QueryProducts(ctx context.Context, query entity.CatalogQuery) []entity.Product {
	key := query.Normalized()

	if cached, ok := srv.cached(key); ok {
		return slices.Clone(cached)
	}

	result := QueryCatalog(srv.repo.All(), key)
	srv.store(key, result)

	requestLogger(ctx, srv.logger).Debug("Catalog query evaluated",
		slog.String("category", string(key.Category)),
		slog.String("collection", string(key.Collection)),
		slog.String("search", key.Search),
		slog.String("sort", string(key.Sort)),
		slog.Int("results", len(result)),
	)

	return slices.Clone(result)
}

func (srv *catalogService) cached(key entity.CatalogQuery) ([]entity.Product, bool) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	result, ok := srv.cache[key]

	return result, ok
}

// store resets the cache once it holds cacheSize entries.
func (srv *catalogService) store(key entity.CatalogQuery, result []entity.Product) {
	if srv.cacheSize <= 0 {
		return
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if len(srv.cache) >= srv.cacheSize {
		clear(srv.cache)
	}
	srv.cache[key] = result
}

func (srv *catalogService) GetProduct(ctx context.Context, id entity.ProductID) (entity.Product, error) {
	product, ok := srv.repo.FindByID(id)
	if !ok {
		return entity.Product{}, domainerrors.ErrProductNotFound.WithDetails("id " + id.String())
	}

	return product, nil
}

func (srv *catalogService) Categories(ctx context.Context) []entity.Category {
	return slices.Clone(srv.repo.Categories())
}
