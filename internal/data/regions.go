package data

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// refRegion is one entry of the fixed seed list. Center is display-only
// and never persisted.
type refRegion struct {
	Name     string
	Code     string
	Boundary string
	Color    string
	Center   [2]float64
}

// unRegions is the seed source of truth for the regions table, following
// the UN geoscheme. Boundaries are coarse GeoJSON polygons; precision
// does not matter beyond hit-testing on a world map.
var unRegions = []refRegion{
	{
		Name:     "Africa",
		Code:     "AF",
		Boundary: `{"type":"Polygon","coordinates":[[[-17.5,35.5],[35.0,37.5],[51.5,12.5],[40.5,-27.0],[18.5,-35.0],[-17.5,14.5],[-17.5,35.5]]]}`,
		Color:    "#f59e0b",
		Center:   [2]float64{1.5, 17.0},
	},
	{
		Name:     "Americas",
		Code:     "AM",
		Boundary: `{"type":"Polygon","coordinates":[[[-168.0,71.5],[-52.0,62.0],[-34.5,-8.0],[-68.0,-56.0],[-81.5,-4.5],[-118.0,32.5],[-168.0,54.5],[-168.0,71.5]]]}`,
		Color:    "#ef4444",
		Center:   [2]float64{8.0, -80.0},
	},
	{
		Name:     "Asia",
		Code:     "AS",
		Boundary: `{"type":"Polygon","coordinates":[[[26.0,41.0],[180.0,66.0],[145.0,30.0],[103.0,-10.5],[66.0,8.0],[34.0,28.0],[26.0,41.0]]]}`,
		Color:    "#22c55e",
		Center:   [2]float64{34.0, 100.5},
	},
	{
		Name:     "Europe",
		Code:     "EU",
		Boundary: `{"type":"Polygon","coordinates":[[[-24.5,65.0],[31.0,70.5],[50.0,50.0],[28.0,36.0],[-9.5,36.0],[-24.5,65.0]]]}`,
		Color:    "#3b82f6",
		Center:   [2]float64{54.5, 15.0},
	},
	{
		Name:     "Oceania",
		Code:     "OC",
		Boundary: `{"type":"Polygon","coordinates":[[[112.5,-10.0],[180.0,-14.5],[179.0,-47.5],[112.5,-39.0],[112.5,-10.0]]]}`,
		Color:    "#a855f7",
		Center:   [2]float64{-25.0, 140.0},
	},
}

// RegionCenters maps region code to the display center used by map
// presentation. Centers live only in the static list, not in the store.
func RegionCenters() map[string][2]float64 {
	centers := make(map[string][2]float64, len(unRegions))
	for _, r := range unRegions {
		centers[r.Code] = r.Center
	}
	return centers
}

// ListRegions returns every region with its boundary deserialized.
func (s *Store) ListRegions(ctx context.Context) ([]Region, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, code, boundary, color FROM regions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	defer rows.Close()

	var out []Region
	for rows.Next() {
		r, err := scanRegion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetRegion returns a region by store key, or nil when absent.
func (s *Store) GetRegion(ctx context.Context, id int64) (*Region, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, code, boundary, color FROM regions WHERE id = ?`, id)
	r, err := scanRegion(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get region: %w", err)
	}
	return &r, nil
}

// CountRegions returns the number of stored regions.
func (s *Store) CountRegions(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM regions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count regions: %w", err)
	}
	return count, nil
}

func scanRegion(r rowScanner) (Region, error) {
	var region Region
	var boundary string
	if err := r.Scan(&region.ID, &region.Name, &region.Code, &boundary, &region.Color); err != nil {
		return region, err
	}
	region.Boundary = json.RawMessage(boundary)
	return region, nil
}

// replaceRegions rewrites the regions table from the static list,
// assigning ids by list position so codes always map to the same key.
func (s *Store) replaceRegions(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin region sync: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM regions`); err != nil {
		return fmt.Errorf("failed to clear regions: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO regions (id, name, code, boundary, color) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare region insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range unRegions {
		if _, err := stmt.ExecContext(ctx, int64(i+1), r.Name, r.Code, r.Boundary, r.Color); err != nil {
			return fmt.Errorf("failed to insert region %s: %w", r.Code, err)
		}
	}

	return tx.Commit()
}

// GetPokemonRegions returns the ids of the regions a Pokemon is assigned to.
func (s *Store) GetPokemonRegions(ctx context.Context, pokemonID int64) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT region_id FROM pokemon_regions WHERE pokemon_id = ? ORDER BY region_id`, pokemonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pokemon regions: %w", err)
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// SetPokemonRegions replaces the full region assignment for one Pokemon in
// a single transaction. Duplicate ids in the input collapse to one link.
func (s *Store) SetPokemonRegions(ctx context.Context, pokemonID int64, regionIDs []int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin region assignment: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM pokemon_regions WHERE pokemon_id = ?`, pokemonID); err != nil {
		return fmt.Errorf("failed to clear region assignment: %w", err)
	}

	for _, regionID := range regionIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO pokemon_regions (pokemon_id, region_id) VALUES (?, ?)`,
			pokemonID, regionID); err != nil {
			return fmt.Errorf("failed to assign region %d: %w", regionID, err)
		}
	}

	return tx.Commit()
}

// listPokemonRegionPairs returns every join row, used by export.
func (s *Store) listPokemonRegionPairs(ctx context.Context) ([]PokemonRegion, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT pokemon_id, region_id FROM pokemon_regions ORDER BY pokemon_id, region_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list region links: %w", err)
	}
	defer rows.Close()

	var out []PokemonRegion
	for rows.Next() {
		var pr PokemonRegion
		if err := rows.Scan(&pr.PokemonID, &pr.RegionID); err != nil {
			return nil, err
		}
		out = append(out, pr)
	}
	return out, rows.Err()
}
