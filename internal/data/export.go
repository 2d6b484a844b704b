package data

import (
	"context"
	"fmt"
	"time"
)

// Export snapshots all user state and region links into a transport
// bundle. The bundle itself is never stored.
func (s *Store) Export(ctx context.Context) (*Bundle, error) {
	userPokemon, err := s.ListUserPokemon(ctx)
	if err != nil {
		return nil, err
	}

	links, err := s.listPokemonRegionPairs(ctx)
	if err != nil {
		return nil, err
	}

	if userPokemon == nil {
		userPokemon = []UserPokemon{}
	}
	if links == nil {
		links = []PokemonRegion{}
	}

	return &Bundle{
		UserPokemon:    userPokemon,
		PokemonRegions: links,
		ExportDate:     time.Now().UTC().Format(time.RFC3339),
		Version:        BundleVersion,
	}, nil
}

// Import fully replaces the user state and region link collections from a
// bundle. The pokemon and regions tables are untouched. A bundle missing
// either collection is rejected with ErrInvalidBundle before any write.
func (s *Store) Import(ctx context.Context, bundle *Bundle) error {
	if bundle == nil || bundle.UserPokemon == nil || bundle.PokemonRegions == nil {
		return ErrInvalidBundle
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_pokemon`); err != nil {
		return fmt.Errorf("failed to clear user state: %w", err)
	}
	for _, up := range bundle.UserPokemon {
		games, err := encodeGames(up.Games)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO user_pokemon (pokemon_id, caught, caught_date, notes, games)
			 VALUES (?, ?, ?, ?, ?)`,
			up.PokemonID, up.Caught, nullString(up.CaughtDate), nullString(up.Notes), games); err != nil {
			return fmt.Errorf("failed to import user state for pokemon %d: %w", up.PokemonID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM pokemon_regions`); err != nil {
		return fmt.Errorf("failed to clear region links: %w", err)
	}
	for _, pr := range bundle.PokemonRegions {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO pokemon_regions (pokemon_id, region_id) VALUES (?, ?)`,
			pr.PokemonID, pr.RegionID); err != nil {
			return fmt.Errorf("failed to import region link %d/%d: %w", pr.PokemonID, pr.RegionID, err)
		}
	}

	return tx.Commit()
}
