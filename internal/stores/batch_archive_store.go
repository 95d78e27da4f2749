package stores

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"factory-events/internal/models"
	"factory-events/internal/shared/filestorages"
)

var (
	ErrBatchAlreadyArchived  = errors.New("batch already archived")
	ErrArchivedBatchNotFound = errors.New("archived batch not found")
)

// BatchArchiveStore keeps encoded raw batches, partitioned by the UTC hour they were received.
// Put is create-if-not-exists, so a redelivered batch is detected instead of overwritten.
//
//go:generate mockgen -source=batch_archive_store.go -destination=./mocks/batch_archive_store_mock.go -package=mocks
type BatchArchiveStore interface {
	Put(ctx context.Context, batchID string, receivedAt time.Time, payload io.Reader) (string, error)
	Open(ctx context.Context, batchID string, receivedAt time.Time) (io.ReadCloser, error)
	ListHour(ctx context.Context, hour time.Time) ([]string, error)
}

type batchArchiveStore struct {
	fileStorage filestorages.FileStorage
	dir         string
	ext         string
}

func NewBatchArchiveStore(fileStorage filestorages.FileStorage) BatchArchiveStore {
	return &batchArchiveStore{fileStorage: fileStorage, dir: "raw-batches", ext: ".jsonl.gz"}
}

func (s *batchArchiveStore) Put(ctx context.Context, batchID string, receivedAt time.Time, payload io.Reader) (string, error) {
	key := s.key(batchID, receivedAt)
	_, err := s.fileStorage.Put(ctx, key, payload, filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return "", ErrBatchAlreadyArchived
		}
		return "", fmt.Errorf("failed to put archived batch: %w", err)
	}
	return key, nil
}

func (s *batchArchiveStore) Open(ctx context.Context, batchID string, receivedAt time.Time) (io.ReadCloser, error) {
	rc, err := s.fileStorage.Get(ctx, s.key(batchID, receivedAt))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrArchivedBatchNotFound
		}
		return nil, fmt.Errorf("failed to open archived batch: %w", err)
	}
	return rc, nil
}

func (s *batchArchiveStore) ListHour(ctx context.Context, hour time.Time) ([]string, error) {
	keys, err := s.fileStorage.List(ctx, fmt.Sprintf("%s/%s", s.dir, models.FormatHourBucket(hour)))
	if err != nil {
		return nil, fmt.Errorf("failed to list archived batches: %w", err)
	}
	return keys, nil
}

func (s *batchArchiveStore) key(batchID string, receivedAt time.Time) string {
	return fmt.Sprintf("%s/%s/%s%s", s.dir, models.FormatHourBucket(receivedAt), batchID, s.ext)
}
