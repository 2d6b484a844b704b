package data

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// GetUserPokemon returns the user state for one Pokemon, or nil when the
// user never interacted with it.
func (s *Store) GetUserPokemon(ctx context.Context, pokemonID int64) (*UserPokemon, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT pokemon_id, caught, caught_date, notes, games FROM user_pokemon WHERE pokemon_id = ?`,
		pokemonID)
	up, err := scanUserPokemon(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user state: %w", err)
	}
	return &up, nil
}

// ListUserPokemon returns all user state rows.
func (s *Store) ListUserPokemon(ctx context.Context) ([]UserPokemon, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT pokemon_id, caught, caught_date, notes, games FROM user_pokemon ORDER BY pokemon_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list user state: %w", err)
	}
	defer rows.Close()

	var out []UserPokemon
	for rows.Next() {
		up, err := scanUserPokemon(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, up)
	}
	return out, rows.Err()
}

// SetCaught toggles the caught flag. The store stamps the caught date on
// the transition to true; un-catching clears the date and the games list
// but keeps notes. Re-catching starts with an empty, present games list.
func (s *Store) SetCaught(ctx context.Context, pokemonID int64, caught bool) error {
	existing, err := s.GetUserPokemon(ctx, pokemonID)
	if err != nil {
		return err
	}

	up := UserPokemon{
		PokemonID: pokemonID,
		Caught:    caught,
	}
	if existing != nil {
		up.Notes = existing.Notes
	}
	if caught {
		up.CaughtDate = time.Now().UTC().Format(time.RFC3339)
		up.Games = []string{}
		if existing != nil && existing.Games != nil {
			up.Games = existing.Games
		}
	}

	return s.putUserPokemon(ctx, up)
}

// SetGames replaces the games list for a Pokemon the user already has
// state for. An empty list is stored as absent. Returns ErrNotCaught when
// no state row exists yet.
func (s *Store) SetGames(ctx context.Context, pokemonID int64, games []string) error {
	existing, err := s.GetUserPokemon(ctx, pokemonID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotCaught
	}

	existing.Games = games
	if len(games) == 0 {
		existing.Games = nil
	}

	return s.putUserPokemon(ctx, *existing)
}

func (s *Store) putUserPokemon(ctx context.Context, up UserPokemon) error {
	games, err := encodeGames(up.Games)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO user_pokemon (pokemon_id, caught, caught_date, notes, games)
		 VALUES (?, ?, ?, ?, ?)`,
		up.PokemonID, up.Caught, nullString(up.CaughtDate), nullString(up.Notes), games)
	if err != nil {
		return fmt.Errorf("failed to write user state: %w", err)
	}
	return nil
}

func scanUserPokemon(r rowScanner) (UserPokemon, error) {
	var up UserPokemon
	var caughtDate, notes, games sql.NullString

	if err := r.Scan(&up.PokemonID, &up.Caught, &caughtDate, &notes, &games); err != nil {
		return up, err
	}

	up.CaughtDate = caughtDate.String
	up.Notes = notes.String
	if games.Valid {
		if err := json.Unmarshal([]byte(games.String), &up.Games); err != nil {
			return up, fmt.Errorf("corrupt games list for pokemon %d: %w", up.PokemonID, err)
		}
	}
	return up, nil
}

// encodeGames serializes the games list, keeping the distinction between
// an empty list (caught, nothing ticked) and no list at all.
func encodeGames(games []string) (sql.NullString, error) {
	if games == nil {
		return sql.NullString{}, nil
	}
	raw, err := json.Marshal(games)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("failed to encode games list: %w", err)
	}
	return sql.NullString{String: string(raw), Valid: true}, nil
}
