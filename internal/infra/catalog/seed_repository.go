// Package catalog serves the read-only product seed.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"log/slog"
	"os"
	"slices"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

//go:embed seed/products.json
var embeddedSeed []byte

type seedRepository struct {
	products   []entity.Product
	byID       map[entity.ProductID]int
	categories []entity.Category
}

// NewSeedRepository loads the catalog from cfg.Catalog.SeedPath, or from the
// embedded seed when no path is configured.
func NewSeedRepository(cfg *config.Config, logger *slog.Logger) (repository.CatalogRepository, error) {
	raw := embeddedSeed
	source := "embedded"
	if path := cfg.Catalog.SeedPath; path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read catalog seed %s", path)
		}
		raw = data
		source = path
	}

	categories := make([]entity.Category, 0, len(cfg.Catalog.Categories))
	for _, c := range cfg.Catalog.Categories {
		categories = append(categories, entity.Category(c))
	}

	repo, err := NewRepositoryFromJSON(raw, categories)
	if err != nil {
		return nil, err
	}

	logger.Info("Catalog seed loaded",
		slog.String("source", source),
		slog.Int("products", len(repo.All())),
	)

	return repo, nil
}

// NewRepositoryFromJSON decodes a JSON product list. Every product must carry a
// unique id and, when categories is non-empty, one of the listed categories.
func NewRepositoryFromJSON(data []byte, categories []entity.Category) (repository.CatalogRepository, error) {
	var products []entity.Product
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&products); err != nil {
		return nil, errors.Wrap(err, "decode catalog seed")
	}

	return NewRepository(products, categories)
}

// NewRepository builds a catalog over products, which is copied.
func NewRepository(products []entity.Product, categories []entity.Category) (repository.CatalogRepository, error) {
	repo := &seedRepository{
		products:   make([]entity.Product, 0, len(products)),
		byID:       make(map[entity.ProductID]int, len(products)),
		categories: slices.Clone(categories),
	}

	for _, p := range products {
		if p.ID == "" {
			return nil, errors.Errorf("catalog product %q has no id", p.Name)
		}
		if _, dup := repo.byID[p.ID]; dup {
			return nil, errors.Errorf("duplicate catalog product id %s", p.ID)
		}
		if len(categories) > 0 && !slices.Contains(categories, p.Category) {
			return nil, errors.Errorf("catalog product %s has unknown category %q", p.ID, p.Category)
		}

		p.BasePrice = canonicalPrice(p.BasePrice)
		repo.byID[p.ID] = len(repo.products)
		repo.products = append(repo.products, p)
	}

	return repo, nil
}

// canonicalPrice strips trailing zeros so a price survives a JSON round trip unchanged.
func canonicalPrice(d decimal.Decimal) decimal.Decimal {
	return decimal.RequireFromString(d.String())
}

func (r *seedRepository) All() []entity.Product {
	return r.products
}

func (r *seedRepository) FindByID(id entity.ProductID) (entity.Product, bool) {
	i, ok := r.byID[id]
	if !ok {
		return entity.Product{}, false
	}

	return r.products[i], true
}

func (r *seedRepository) Categories() []entity.Category {
	return slices.Clone(r.categories)
}
