package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvStore implements repository.KeyValueStore on the storefront_entries table.
type kvStore struct {
	db        *gorm.DB
	keyPrefix string
	stop      func() error
}

// NewKeyValueStore binds a store to db. stop, when non-nil, is run by Close.
func NewKeyValueStore(db *gorm.DB, keyPrefix string, stop func() error) repository.KeyValueStore {
	return &kvStore{db: db, keyPrefix: keyPrefix, stop: stop}
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry model.EntryModel
	err := s.db.WithContext(ctx).
		Where("key = ?", s.keyPrefix+key).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntryNotFound
		}

		return nil, errors.Wrapf(err, "failed to read entry %s", key)
	}

	return entry.Value, nil
}

func (s *kvStore) Put(ctx context.Context, key string, value []byte) error {
	entry := model.EntryModel{
		Key:       s.keyPrefix + key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error

	return errors.Wrapf(err, "failed to write entry %s", key)
}

func (s *kvStore) Close() error {
	if s.stop == nil {
		return nil
	}

	return s.stop()
}
