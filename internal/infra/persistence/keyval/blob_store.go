package keyval

import (
	"context"

	"bites/internal/errors"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// blobStore adapts a gocloud blob bucket to the Store interface. The file
// driver gives durable local storage; the in-memory driver serves tests and
// ephemeral runs.
type blobStore struct {
	bucket *blob.Bucket
}

// NewFileStore opens a file-backed store rooted at dir, creating it when
// absent.
func NewFileStore(dir string) (Store, error) {
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrapf(err, "open file bucket at %s", dir)
	}

	return &blobStore{bucket: bucket}, nil
}

// NewMemoryStore opens an empty in-memory store.
func NewMemoryStore() Store {
	return &blobStore{bucket: memblob.OpenBucket(nil)}
}

func (s *blobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "read key %s", key)
	}

	return data, nil
}

func (s *blobStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.bucket.WriteAll(ctx, key, value, nil); err != nil {
		return errors.Wrapf(err, "write key %s", key)
	}

	return nil
}

func (s *blobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete key %s", key)
	}

	return nil
}
