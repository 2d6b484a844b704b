package data

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.SetCaught(ctx, 1, true))
	require.NoError(t, store.SetGames(ctx, 1, []string{"red", "gold"}))
	require.NoError(t, store.SetCaught(ctx, 4, true))
	require.NoError(t, store.SetCaught(ctx, 7, false))
	require.NoError(t, store.SetPokemonRegions(ctx, 1, []int64{1, 3}))
	require.NoError(t, store.SetPokemonRegions(ctx, 4, []int64{2}))

	bundle, err := store.Export(ctx)
	require.NoError(t, err)
	require.NotNil(t, bundle)
	assert.Equal(t, BundleVersion, bundle.Version)
	assert.Len(t, bundle.UserPokemon, 3)
	assert.Len(t, bundle.PokemonRegions, 3)

	_, err = time.Parse(time.RFC3339, bundle.ExportDate)
	assert.NoError(t, err)

	// Wipe and restore into a second store.
	other := newTestStore(t)
	require.NoError(t, other.Import(ctx, bundle))

	restored, err := other.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, bundle.UserPokemon, restored.UserPokemon)
	assert.Equal(t, bundle.PokemonRegions, restored.PokemonRegions)

	up, err := other.GetUserPokemon(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, up)
	assert.True(t, up.Caught)
	assert.Equal(t, []string{"red", "gold"}, up.Games)
}

func TestExportEmptyStore(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	bundle, err := store.Export(ctx)
	require.NoError(t, err)
	require.NotNil(t, bundle)

	// Empty collections serialize as [] rather than null.
	raw, err := json.Marshal(bundle)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"user_pokemon":[]`)
	assert.Contains(t, string(raw), `"pokemon_regions":[]`)
}

func TestImportReplacesExistingState(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.SetCaught(ctx, 99, true))
	require.NoError(t, store.SetPokemonRegions(ctx, 99, []int64{5}))

	bundle := &Bundle{
		UserPokemon: []UserPokemon{
			{PokemonID: 1, Caught: true, CaughtDate: "2024-01-01T00:00:00Z", Games: []string{}},
		},
		PokemonRegions: []PokemonRegion{{PokemonID: 1, RegionID: 2}},
		ExportDate:     "2024-01-01T00:00:00Z",
		Version:        BundleVersion,
	}
	require.NoError(t, store.Import(ctx, bundle))

	// Prior state is gone, only the bundle contents remain.
	up, err := store.GetUserPokemon(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, up)

	regions, err := store.GetPokemonRegions(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, regions)

	up, err = store.GetUserPokemon(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, up)
	assert.Equal(t, "2024-01-01T00:00:00Z", up.CaughtDate)
	assert.NotNil(t, up.Games)
	assert.Empty(t, up.Games)
}

func TestImportLeavesCatalogAlone(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.replaceRegions(ctx))
	require.NoError(t, store.replacePokemon(ctx, []Pokemon{
		{Number: 1, Name: "Bulbasaur", Type1: "Grass"},
	}))

	require.NoError(t, store.Import(ctx, &Bundle{
		UserPokemon:    []UserPokemon{},
		PokemonRegions: []PokemonRegion{},
	}))

	count, err := store.CountPokemon(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	count, err = store.CountRegions(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(unRegions), count)
}

func TestImportRejectsInvalidBundle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.SetCaught(ctx, 5, true))

	cases := map[string]*Bundle{
		"nil bundle":      nil,
		"missing users":   {PokemonRegions: []PokemonRegion{}},
		"missing regions": {UserPokemon: []UserPokemon{}},
	}
	for name, bundle := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, store.Import(ctx, bundle), ErrInvalidBundle)
		})
	}

	// Nothing was touched by the rejected imports.
	up, err := store.GetUserPokemon(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, up)
	assert.True(t, up.Caught)
}
