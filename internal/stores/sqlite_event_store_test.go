package stores

import (
	"context"
	"path/filepath"
	"testing"

	"factory-events/internal/shared/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSQLiteStore(t *testing.T) EventStore {
	t.Helper()
	store, err := NewEventStore(context.Background(), configs.DatabaseConfig{
		Driver: configs.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "events.db"),
	})
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteEventStore_Contract(t *testing.T) {
	t.Parallel()

	runEventStoreContract(t, createTestSQLiteStore(t))
}

func TestSQLiteEventStore_MigrateIsIdempotent(t *testing.T) {
	t.Parallel()

	store := createTestSQLiteStore(t)
	require.NoError(t, store.Migrate(context.Background()))
}

func TestNewSQLiteEventStore_CreatesParentDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "data", "events.db")
	store, err := NewSQLiteEventStore(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	assert.FileExists(t, path)
}
