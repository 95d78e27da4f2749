package stores

import (
	"context"
	"errors"
	"fmt"

	"factory-events/internal/models"
	"factory-events/internal/shared/configs"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// EventWriter performs the two write phases of a batch. Both methods return one flag per
// input row, in input order.
//
// InsertIfAbsent inserts every row whose event_id is not yet stored; rows that collide with
// the unique constraint are skipped without error and reported false.
//
// ConditionalUpdate overwrites a stored row only when the incoming received_time is strictly
// newer and at least one payload column differs. The check and the write are a single
// statement, so concurrent batches are arbitrated by the database row lock.
//
//go:generate mockgen -source=event_store.go -destination=./mocks/event_store_mock.go -package=mocks
type EventWriter interface {
	InsertIfAbsent(ctx context.Context, rows []*models.Event) ([]bool, error)
	ConditionalUpdate(ctx context.Context, rows []*models.Event) ([]bool, error)
}

type EventReader interface {
	AggregateByMachine(ctx context.Context, machineID string, window models.Window) (*models.MachineAggregate, error)
	// AggregateTopLines ranks lines by total defects desc, event count desc, line id asc.
	AggregateTopLines(ctx context.Context, factoryID string, window models.Window, limit int) ([]*models.LineAggregate, error)
	FindByEventID(ctx context.Context, eventID string) (*models.Event, error)
}

type EventStore interface {
	EventReader
	// RunInTx runs fn inside one transaction, committing only if fn returns nil.
	RunInTx(ctx context.Context, fn func(ctx context.Context, w EventWriter) error) error
	Ping(ctx context.Context) error
	Migrate(ctx context.Context) error
	Close() error
}

// NewEventStore opens the store selected by cfg.Driver.
func NewEventStore(ctx context.Context, cfg configs.DatabaseConfig) (EventStore, error) {
	switch cfg.Driver {
	case configs.DriverPostgres:
		return NewPostgresEventStore(ctx, cfg.DSN, cfg.MaxConns)
	case configs.DriverSQLite:
		return NewSQLiteEventStore(ctx, cfg.DSN)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}
