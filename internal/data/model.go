package data

import "encoding/json"

// Pokemon is one catalog entry. ID is the store key; Number is the stable
// national number. Rows are written only by seeding and are read-only
// afterwards.
type Pokemon struct {
	ID             int64  `json:"id"`
	Number         int    `json:"number"`
	Name           string `json:"name"`
	Type1          string `json:"type1"`
	Type2          string `json:"type2,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
	Description    string `json:"description,omitempty"`
	Generation     int    `json:"generation,omitempty"`
	Habitat        string `json:"habitat,omitempty"`
	HP             int    `json:"hp,omitempty"`
	Attack         int    `json:"attack,omitempty"`
	Defense        int    `json:"defense,omitempty"`
	SpecialAttack  int    `json:"special_attack,omitempty"`
	SpecialDefense int    `json:"special_defense,omitempty"`
	Speed          int    `json:"speed,omitempty"`
}

// Region is a geographic grouping Pokemon can be assigned to. Boundary is
// stored as GeoJSON text and deserialized on read.
type Region struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Code     string          `json:"code"`
	Boundary json.RawMessage `json:"boundary"`
	Color    string          `json:"color"`
}

// PokemonRegion links a Pokemon to a region.
type PokemonRegion struct {
	PokemonID int64 `json:"pokemon_id"`
	RegionID  int64 `json:"region_id"`
}

// UserPokemon is the per-Pokemon user state. A missing row means the user
// never interacted with that Pokemon. CaughtDate is set by the store when
// caught flips to true and is never supplied by callers. Games is only
// meaningful while caught.
type UserPokemon struct {
	PokemonID  int64    `json:"pokemon_id"`
	Caught     bool     `json:"caught"`
	CaughtDate string   `json:"caught_date,omitempty"`
	Notes      string   `json:"notes,omitempty"`
	// Games keeps nil (absent) distinct from empty (caught, none ticked),
	// so it round-trips through export without omitempty.
	Games []string `json:"games"`
}

// Bundle is the transport snapshot for export/import. It is never
// persisted inside the store itself.
type Bundle struct {
	UserPokemon    []UserPokemon   `json:"user_pokemon"`
	PokemonRegions []PokemonRegion `json:"pokemon_regions"`
	ExportDate     string          `json:"export_date"`
	Version        string          `json:"version"`
}

// BundleVersion tags exported bundles.
const BundleVersion = "1.0"

// Game is a known main-series game edition. The list is fixed in code and
// never persisted; it exists to validate and display UserPokemon.Games.
type Game struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Generation int    `json:"generation"`
	Year       int    `json:"year"`
	Platform   string `json:"platform"`
}
