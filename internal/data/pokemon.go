package data

import (
	"context"
	"database/sql"
	"fmt"
)

const pokemonColumns = `id, number, name, type1, type2, image_url, description,
	generation, habitat, hp, attack, defense, special_attack, special_defense, speed`

// ListPokemon returns every Pokemon ordered by store key.
func (s *Store) ListPokemon(ctx context.Context) ([]Pokemon, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+pokemonColumns+` FROM pokemon ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pokemon: %w", err)
	}
	defer rows.Close()

	var out []Pokemon
	for rows.Next() {
		p, err := scanPokemon(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetPokemon returns a Pokemon by store key, or nil when absent.
func (s *Store) GetPokemon(ctx context.Context, id int64) (*Pokemon, error) {
	return s.getPokemon(ctx,
		`SELECT `+pokemonColumns+` FROM pokemon WHERE id = ?`, id)
}

// GetPokemonByNumber returns a Pokemon by national number, or nil.
func (s *Store) GetPokemonByNumber(ctx context.Context, number int) (*Pokemon, error) {
	return s.getPokemon(ctx,
		`SELECT `+pokemonColumns+` FROM pokemon WHERE number = ?`, number)
}

func (s *Store) getPokemon(ctx context.Context, query string, arg interface{}) (*Pokemon, error) {
	row := s.db.QueryRowContext(ctx, query, arg)
	p, err := scanPokemon(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pokemon: %w", err)
	}
	return &p, nil
}

// CountPokemon returns the number of stored Pokemon.
func (s *Store) CountPokemon(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pokemon`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pokemon: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPokemon(r rowScanner) (Pokemon, error) {
	var p Pokemon
	var type2, imageURL, description, habitat sql.NullString
	var generation, hp, attack, defense, spAtk, spDef, speed sql.NullInt64

	err := r.Scan(&p.ID, &p.Number, &p.Name, &p.Type1, &type2, &imageURL,
		&description, &generation, &habitat, &hp, &attack, &defense,
		&spAtk, &spDef, &speed)
	if err != nil {
		return p, err
	}

	p.Type2 = type2.String
	p.ImageURL = imageURL.String
	p.Description = description.String
	p.Habitat = habitat.String
	p.Generation = int(generation.Int64)
	p.HP = int(hp.Int64)
	p.Attack = int(attack.Int64)
	p.Defense = int(defense.Int64)
	p.SpecialAttack = int(spAtk.Int64)
	p.SpecialDefense = int(spDef.Int64)
	p.Speed = int(speed.Int64)
	return p, nil
}

// replacePokemon rewrites the whole pokemon table from list within one
// transaction, assigning ids 1..N in list order. List order is national
// number order, so ids are stable across reseeds and existing join and
// user rows stay valid.
func (s *Store) replacePokemon(ctx context.Context, list []Pokemon) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin insert: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM pokemon`); err != nil {
		return fmt.Errorf("failed to clear pokemon: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO pokemon (`+pokemonColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range list {
		_, err := stmt.ExecContext(ctx, int64(i+1), p.Number, p.Name, p.Type1,
			nullString(p.Type2), nullString(p.ImageURL), nullString(p.Description),
			nullInt(p.Generation), nullString(p.Habitat), nullInt(p.HP),
			nullInt(p.Attack), nullInt(p.Defense), nullInt(p.SpecialAttack),
			nullInt(p.SpecialDefense), nullInt(p.Speed))
		if err != nil {
			return fmt.Errorf("failed to insert pokemon %d: %w", p.Number, err)
		}
	}

	return tx.Commit()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(i int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(i), Valid: i != 0}
}
