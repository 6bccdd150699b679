// Package blob stores shopper state as objects in a gocloud bucket
// (mem://, file://, gs://).
package blob

import (
	"context"
	"log/slog"

	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const contentTypeJSON = "application/json"

type kvStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// Open opens the bucket at bucketURL, scoped to keyPrefix.
func Open(ctx context.Context, bucketURL, keyPrefix string, logger *slog.Logger) (repository.KeyValueStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}
	if keyPrefix != "" {
		bucket = blob.PrefixedBucket(bucket, keyPrefix)
	}

	logger.Info("Blob storage opened",
		slog.String("bucket", bucketURL),
		slog.String("prefix", keyPrefix),
	)

	return NewKeyValueStore(bucket, logger), nil
}

// NewKeyValueStore wraps an already opened bucket. The store owns it from now on.
func NewKeyValueStore(bucket *blob.Bucket, logger *slog.Logger) repository.KeyValueStore {
	return &kvStore{bucket: bucket, logger: logger}
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrEntryNotFound
		}

		return nil, errors.Wrapf(err, "read %s", key)
	}

	return data, nil
}

func (s *kvStore) Put(ctx context.Context, key string, value []byte) error {
	err := s.bucket.WriteAll(ctx, key, value, &blob.WriterOptions{ContentType: contentTypeJSON})

	return errors.Wrapf(err, "write %s", key)
}

func (s *kvStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
