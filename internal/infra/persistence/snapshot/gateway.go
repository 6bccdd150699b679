// Package snapshot serializes engine state into five named storage entries.
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
)

// Entry keys. They match the keys the storefront has always written.
const (
	KeyCart            = "cart"
	KeyWishlist        = "wishlist"
	KeyIsAuthenticated = "isAuthenticated"
	KeyUser            = "user"
	KeyCurrency        = "currency"
)

// CurrentVersion is written into every envelope. Entries without an envelope are
// read as version 0, which carries the bare payload.
const CurrentVersion = 1

type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

type gateway struct {
	store  repository.KeyValueStore
	logger *slog.Logger
}

// NewGateway returns a StateGateway over store.
func NewGateway(store repository.KeyValueStore, logger *slog.Logger) repository.StateGateway {
	return &gateway{store: store, logger: logger}
}

func (g *gateway) Load(ctx context.Context, defaults entity.Snapshot) entity.Snapshot {
	snap := defaults

	var lines []entity.CartLine
	if g.read(ctx, KeyCart, &lines, validateCart) {
		snap.Cart = entity.Cart{Lines: lines}
	}

	var items []entity.Product
	if g.read(ctx, KeyWishlist, &items, validateWishlist) {
		snap.Wishlist = entity.Wishlist{Items: items}
	}

	var authenticated bool
	if g.read(ctx, KeyIsAuthenticated, &authenticated, nil) {
		snap.IsAuthenticated = authenticated
	}

	var user *entity.UserProfile
	if g.read(ctx, KeyUser, &user, nil) {
		snap.User = user
	}

	// A session is only restored as a whole: the flag without a profile, or a
	// profile without the flag, reads as anonymous.
	if !snap.IsAuthenticated || snap.User == nil {
		snap.IsAuthenticated = false
		snap.User = nil
	}

	if code, ok := g.readCurrency(ctx); ok {
		snap.Currency = code
	}

	return snap
}

func (g *gateway) Save(ctx context.Context, snap entity.Snapshot) error {
	lines := snap.Cart.Lines
	if lines == nil {
		lines = []entity.CartLine{}
	}
	items := snap.Wishlist.Items
	if items == nil {
		items = []entity.Product{}
	}

	entries := []struct {
		key   string
		value any
	}{
		{KeyCart, lines},
		{KeyWishlist, items},
		{KeyIsAuthenticated, snap.IsAuthenticated},
		{KeyUser, snap.User},
		{KeyCurrency, snap.Currency},
	}

	var errs []error
	for _, e := range entries {
		if err := g.write(ctx, e.key, e.value); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (g *gateway) write(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}

	body, err := json.Marshal(envelope{Version: CurrentVersion, Data: data})
	if err != nil {
		return errors.Wrapf(err, "encode %s envelope", key)
	}

	return errors.Wrapf(g.store.Put(ctx, key, body), "save %s", key)
}

// read loads key into out and reports whether out now holds a usable value.
func (g *gateway) read(ctx context.Context, key string, out any, validate func(any) error) bool {
	raw, ok := g.fetch(ctx, key)
	if !ok {
		return false
	}

	payload, err := unwrap(raw)
	if err == nil {
		err = json.Unmarshal(payload, out)
	}
	if err == nil && validate != nil {
		err = validate(out)
	}
	if err != nil {
		g.logger.Warn("Discarding unreadable storage entry",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return false
	}

	return true
}

// readCurrency also accepts the legacy bare code ("EUR") that was never JSON encoded.
func (g *gateway) readCurrency(ctx context.Context) (entity.CurrencyCode, bool) {
	raw, ok := g.fetch(ctx, KeyCurrency)
	if !ok {
		return "", false
	}

	if !json.Valid(raw) {
		code := string(bytes.TrimSpace(raw))
		if code == "" {
			return "", false
		}

		return entity.CurrencyCode(code), true
	}

	var code *string
	payload, err := unwrap(raw)
	if err == nil {
		err = json.Unmarshal(payload, &code)
	}
	if err == nil && (code == nil || *code == "") {
		err = errors.New("currency entry holds no code")
	}
	if err != nil {
		g.logger.Warn("Discarding unreadable storage entry",
			slog.String("key", KeyCurrency),
			slog.Any("error", err),
		)

		return "", false
	}

	return entity.CurrencyCode(*code), true
}

func (g *gateway) fetch(ctx context.Context, key string) ([]byte, bool) {
	raw, err := g.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			g.logger.Debug("Storage entry absent, using default", slog.String("key", key))
		} else {
			g.logger.Warn("Storage read failed, using default",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}

		return nil, false
	}

	return raw, true
}

// unwrap returns the payload of a versioned envelope, or raw itself for
// unversioned entries.
func unwrap(raw []byte) (json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		// Not an object, so not an envelope: arrays, booleans, strings, null.
		return raw, nil
	}

	versionRaw, hasVersion := fields["version"]
	data, hasData := fields["data"]
	if !hasVersion || !hasData {
		return raw, nil
	}

	var version int
	if err := json.Unmarshal(versionRaw, &version); err != nil {
		return nil, errors.Wrap(err, "decode envelope version")
	}
	if version < 1 || version > CurrentVersion {
		return nil, errors.Errorf("unsupported entry version %d", version)
	}

	return data, nil
}

func validateCart(v any) error {
	lines := *v.(*[]entity.CartLine)
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if l.ProductID == "" {
			return errors.New("cart line without product id")
		}
		if l.Quantity < entity.MinLineQuantity {
			return errors.Errorf("cart line %s has quantity %d", l.Key(), l.Quantity)
		}
		if _, dup := seen[l.Key()]; dup {
			return errors.Errorf("duplicate cart line %s", l.Key())
		}
		seen[l.Key()] = struct{}{}
	}

	return nil
}

func validateWishlist(v any) error {
	items := *v.(*[]entity.Product)
	seen := make(map[entity.ProductID]struct{}, len(items))
	for _, p := range items {
		if _, dup := seen[p.ID]; dup {
			return errors.Errorf("duplicate wishlist product %s", p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return nil
}
