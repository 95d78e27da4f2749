package ingestors

import (
	"context"
	"fmt"

	"factory-events/internal/models"
	"factory-events/internal/stores"
)

type RowOutcome int

const (
	RowAccepted RowOutcome = iota + 1
	RowUpdated
	RowDeduped
)

func (o RowOutcome) String() string {
	switch o {
	case RowAccepted:
		return "accepted"
	case RowUpdated:
		return "updated"
	case RowDeduped:
		return "deduped"
	default:
		return "unknown"
	}
}

// BatchUpserter resolves candidate rows against the event store in one transaction:
// insert-if-absent for every row, then the guarded reconciling update for the rows that
// already existed. No row is read before it is written; the store arbitrates concurrent
// batches through its unique constraint and row-level atomicity.
//
//go:generate mockgen -source=batch_upserter.go -destination=./mocks/batch_upserter_mock.go -package=mocks
type BatchUpserter interface {
	// Upsert returns one outcome per row, in input order.
	Upsert(ctx context.Context, rows []*models.Event) ([]RowOutcome, error)
}

type batchUpserter struct {
	store stores.EventStore
}

func NewBatchUpserter(store stores.EventStore) BatchUpserter {
	return &batchUpserter{store: store}
}

func (u *batchUpserter) Upsert(ctx context.Context, rows []*models.Event) ([]RowOutcome, error) {
	outcomes := make([]RowOutcome, len(rows))
	if len(rows) == 0 {
		return outcomes, nil
	}

	err := u.store.RunInTx(ctx, func(ctx context.Context, w stores.EventWriter) error {
		inserted, err := w.InsertIfAbsent(ctx, rows)
		if err != nil {
			return fmt.Errorf("insert phase: %w", err)
		}
		if len(inserted) != len(rows) {
			return fmt.Errorf("insert phase: got %d results for %d rows", len(inserted), len(rows))
		}

		var conflicted []*models.Event
		var conflictedIdx []int
		for i, ok := range inserted {
			if ok {
				outcomes[i] = RowAccepted
				continue
			}
			conflicted = append(conflicted, rows[i])
			conflictedIdx = append(conflictedIdx, i)
		}
		if len(conflicted) == 0 {
			return nil
		}

		updated, err := w.ConditionalUpdate(ctx, conflicted)
		if err != nil {
			return fmt.Errorf("update phase: %w", err)
		}
		if len(updated) != len(conflicted) {
			return fmt.Errorf("update phase: got %d results for %d rows", len(updated), len(conflicted))
		}
		for j, ok := range updated {
			if ok {
				outcomes[conflictedIdx[j]] = RowUpdated
			} else {
				outcomes[conflictedIdx[j]] = RowDeduped
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return outcomes, nil
}
