package data

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesSchema(t *testing.T) {
	store := newTestStore(t)

	// A fresh file starts at version 0, so exactly one upgrade pass runs.
	assert.Equal(t, 1, store.Migrations())

	count, err := store.CountPokemon(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = store.CountRegions(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMigrationPreservesUserTables(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(path, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, store.replaceRegions(ctx))
	require.NoError(t, store.replacePokemon(ctx, []Pokemon{
		{Number: 1, Name: "Bulbasaur", Type1: "Grass"},
	}))
	require.NoError(t, store.SetCaught(ctx, 1, true))
	require.NoError(t, store.SetPokemonRegions(ctx, 1, []int64{2, 3}))

	// Roll the on-disk version back so the next open migrates again.
	_, err = store.db.Exec("PRAGMA user_version = 5")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(path, zap.NewNop())
	require.NoError(t, err)
	defer store.Close()
	assert.Equal(t, 1, store.Migrations())

	// Reference tables were dropped.
	count, err := store.CountPokemon(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	count, err = store.CountRegions(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// User progress and region assignments survived.
	up, err := store.GetUserPokemon(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, up)
	assert.True(t, up.Caught)

	regions, err := store.GetPokemonRegions(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, regions)
}

func TestNoMigrationWhenCurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(path, zap.NewNop())
	require.NoError(t, err)
	defer store.Close()
	assert.Zero(t, store.Migrations())
}

func TestManagerCoalescesOpens(t *testing.T) {
	ctx := context.Background()
	m := NewManager(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	defer m.Close()

	const callers = 16
	stores := make([]*Store, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			stores[i], errs[i] = m.Ensure(ctx)
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, stores[0], stores[i])
	}
	assert.Equal(t, 1, stores[0].Migrations())
}

func TestManagerRetriesAfterFailedOpen(t *testing.T) {
	ctx := context.Background()

	// The parent directory does not exist, so every open attempt fails.
	m := NewManager(filepath.Join(t.TempDir(), "missing", "test.db"), zap.NewNop())

	_, err := m.Ensure(ctx)
	require.Error(t, err)

	// The in-flight slot was cleared; a second attempt fails the same way
	// instead of hanging on poisoned state.
	_, err = m.Ensure(ctx)
	require.Error(t, err)
}
