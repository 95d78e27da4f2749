package stores

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"factory-events/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema/sqlite.sql
var sqliteSchemaSQL string

var sqlitePragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA busy_timeout = 5000",
}

// sqliteEventStore keeps a single connection: SQLite allows one writer, and funnelling every
// transaction through one connection makes it the serialization point for concurrent batches.
type sqliteEventStore struct {
	db *sql.DB
}

// NewSQLiteEventStore opens (creating if needed) the database file at path.
func NewSQLiteEventStore(ctx context.Context, path string) (EventStore, error) {
	if !strings.HasPrefix(path, "file:") && path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}
	for _, pragma := range sqlitePragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	return &sqliteEventStore{db: db}, nil
}

func (s *sqliteEventStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqliteSchemaSQL); err != nil {
		return fmt.Errorf("failed to apply sqlite schema: %w", err)
	}
	return nil
}

func (s *sqliteEventStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqliteEventStore) Close() error {
	return s.db.Close()
}

func (s *sqliteEventStore) RunInTx(ctx context.Context, fn func(ctx context.Context, w EventWriter) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(ctx, &sqliteEventWriter{tx: tx}); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *sqliteEventStore) AggregateByMachine(ctx context.Context, machineID string, window models.Window) (*models.MachineAggregate, error) {
	agg := &models.MachineAggregate{}
	err := s.db.QueryRowContext(ctx, sqliteAggregateByMachineQuery, machineID, toUnixNanos(window.Start), toUnixNanos(window.End)).
		Scan(&agg.EventsCount, &agg.DefectsCount)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate machine %q: %w", machineID, err)
	}
	return agg, nil
}

func (s *sqliteEventStore) AggregateTopLines(ctx context.Context, factoryID string, window models.Window, limit int) ([]*models.LineAggregate, error) {
	rows, err := s.db.QueryContext(ctx, sqliteAggregateTopLinesQuery, factoryID, toUnixNanos(window.Start), toUnixNanos(window.End), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate lines of factory %q: %w", factoryID, err)
	}
	defer rows.Close()

	lines := []*models.LineAggregate{}
	for rows.Next() {
		line := &models.LineAggregate{}
		if err := rows.Scan(&line.LineID, &line.EventCount, &line.TotalDefects); err != nil {
			return nil, fmt.Errorf("failed to read line aggregate: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read line aggregates: %w", err)
	}
	return lines, nil
}

func (s *sqliteEventStore) FindByEventID(ctx context.Context, eventID string) (*models.Event, error) {
	e := &models.Event{}
	var eventTime, receivedTime int64
	err := s.db.QueryRowContext(ctx, sqliteFindByEventIDQuery, eventID).Scan(
		&e.EventID, &e.FactoryID, &e.LineID, &e.MachineID,
		&eventTime, &receivedTime, &e.DurationMs, &e.DefectCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to find event %q: %w", eventID, err)
	}
	e.EventTime = fromUnixNanos(eventTime)
	e.ReceivedTime = fromUnixNanos(receivedTime)
	return e, nil
}

// sqliteEventWriter reuses one prepared statement per phase inside the transaction.
type sqliteEventWriter struct {
	tx *sql.Tx
}

func (w *sqliteEventWriter) InsertIfAbsent(ctx context.Context, rows []*models.Event) ([]bool, error) {
	return w.execPrepared(ctx, sqliteInsertIfAbsentQuery, rows, func(e *models.Event) []any {
		return []any{e.EventID, e.FactoryID, e.LineID, e.MachineID, toUnixNanos(e.EventTime), toUnixNanos(e.ReceivedTime), e.DurationMs, e.DefectCount}
	})
}

func (w *sqliteEventWriter) ConditionalUpdate(ctx context.Context, rows []*models.Event) ([]bool, error) {
	return w.execPrepared(ctx, sqliteConditionalUpdateQuery, rows, func(e *models.Event) []any {
		return []any{e.FactoryID, e.LineID, e.MachineID, toUnixNanos(e.EventTime), toUnixNanos(e.ReceivedTime), e.DurationMs, e.DefectCount, e.EventID}
	})
}

func (w *sqliteEventWriter) execPrepared(ctx context.Context, query string, rows []*models.Event, args func(*models.Event) []any) ([]bool, error) {
	affected := make([]bool, len(rows))
	if len(rows) == 0 {
		return affected, nil
	}

	stmt, err := w.tx.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i, e := range rows {
		res, err := stmt.ExecContext(ctx, args(e)...)
		if err != nil {
			return nil, fmt.Errorf("failed to write event %q: %w", e.EventID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("failed to read rows affected: %w", err)
		}
		affected[i] = n == 1
	}
	return affected, nil
}

func toUnixNanos(t time.Time) int64 {
	return t.UTC().UnixNano()
}

func fromUnixNanos(n int64) time.Time {
	return time.Unix(0, n).UTC()
}
