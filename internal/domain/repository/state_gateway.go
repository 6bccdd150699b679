package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// StateGateway moves engine snapshots to and from durable storage.
type StateGateway interface {
	// Load reads every persisted entry. An entry that is missing or cannot be
	// decoded is taken from defaults instead; Load never fails.
	Load(ctx context.Context, defaults entity.Snapshot) entity.Snapshot

	// Save writes every entry. Callers treat the returned error as advisory.
	Save(ctx context.Context, snapshot entity.Snapshot) error
}
