package stores

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"factory-events/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema/postgres.sql
var postgresSchemaSQL string

type postgresEventStore struct {
	pool *pgxpool.Pool
}

// NewPostgresEventStore creates a connection pool and fails fast if the database is unreachable.
func NewPostgresEventStore(ctx context.Context, dsn string, maxConns int) (EventStore, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}
	if maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	return &postgresEventStore{pool: pool}, nil
}

func (s *postgresEventStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, postgresSchemaSQL); err != nil {
		return fmt.Errorf("failed to apply postgres schema: %w", err)
	}
	return nil
}

func (s *postgresEventStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *postgresEventStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *postgresEventStore) RunInTx(ctx context.Context, fn func(ctx context.Context, w EventWriter) error) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(ctx, &postgresEventWriter{tx: tx})
	})
}

func (s *postgresEventStore) AggregateByMachine(ctx context.Context, machineID string, window models.Window) (*models.MachineAggregate, error) {
	agg := &models.MachineAggregate{}
	err := s.pool.QueryRow(ctx, pgAggregateByMachineQuery, machineID, window.Start, window.End).
		Scan(&agg.EventsCount, &agg.DefectsCount)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate machine %q: %w", machineID, err)
	}
	return agg, nil
}

func (s *postgresEventStore) AggregateTopLines(ctx context.Context, factoryID string, window models.Window, limit int) ([]*models.LineAggregate, error) {
	rows, err := s.pool.Query(ctx, pgAggregateTopLinesQuery, factoryID, window.Start, window.End, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate lines of factory %q: %w", factoryID, err)
	}
	lines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.LineAggregate, error) {
		line := &models.LineAggregate{}
		err := row.Scan(&line.LineID, &line.EventCount, &line.TotalDefects)
		return line, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read line aggregates: %w", err)
	}
	return lines, nil
}

func (s *postgresEventStore) FindByEventID(ctx context.Context, eventID string) (*models.Event, error) {
	e := &models.Event{}
	err := s.pool.QueryRow(ctx, pgFindByEventIDQuery, eventID).Scan(
		&e.EventID, &e.FactoryID, &e.LineID, &e.MachineID,
		&e.EventTime, &e.ReceivedTime, &e.DurationMs, &e.DefectCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to find event %q: %w", eventID, err)
	}
	e.EventTime = e.EventTime.UTC()
	e.ReceivedTime = e.ReceivedTime.UTC()
	return e, nil
}

// postgresEventWriter sends each phase as a single pgx.Batch round trip on the transaction.
type postgresEventWriter struct {
	tx pgx.Tx
}

func (w *postgresEventWriter) InsertIfAbsent(ctx context.Context, rows []*models.Event) ([]bool, error) {
	return w.execBatch(ctx, pgInsertIfAbsentQuery, rows)
}

func (w *postgresEventWriter) ConditionalUpdate(ctx context.Context, rows []*models.Event) ([]bool, error) {
	return w.execBatch(ctx, pgConditionalUpdateQuery, rows)
}

func (w *postgresEventWriter) execBatch(ctx context.Context, query string, rows []*models.Event) ([]bool, error) {
	affected := make([]bool, len(rows))
	if len(rows) == 0 {
		return affected, nil
	}

	batch := &pgx.Batch{}
	for _, e := range rows {
		batch.Queue(query, e.EventID, e.FactoryID, e.LineID, e.MachineID, e.EventTime, e.ReceivedTime, e.DurationMs, e.DefectCount)
	}

	results := w.tx.SendBatch(ctx, batch)
	for i := range rows {
		tag, err := results.Exec()
		if err != nil {
			_ = results.Close()
			return nil, fmt.Errorf("failed to write event %q: %w", rows[i].EventID, err)
		}
		affected[i] = tag.RowsAffected() == 1
	}
	if err := results.Close(); err != nil {
		return nil, fmt.Errorf("failed to close batch results: %w", err)
	}
	return affected, nil
}
