package pokeapi

// PokemonData is the normalized result of fetching one Pokemon. It is
// always fully populated enough to store: a failed fetch yields fallback
// values instead of an error.
type PokemonData struct {
	Number         int
	Name           string
	Type1          string
	Type2          string
	ImageURL       string
	Description    string
	Generation     int
	Habitat        string
	HP             int
	Attack         int
	Defense        int
	SpecialAttack  int
	SpecialDefense int
	Speed          int
}

// EvolutionDetails holds the conditions required to evolve into a stage.
type EvolutionDetails struct {
	Trigger               string `json:"trigger,omitempty"`
	Level                 int    `json:"level,omitempty"`
	Item                  string `json:"item,omitempty"`
	TimeOfDay             string `json:"timeOfDay,omitempty"`
	Location              string `json:"location,omitempty"`
	MinHappiness          int    `json:"minHappiness,omitempty"`
	MinBeauty             int    `json:"minBeauty,omitempty"`
	MinAffection          int    `json:"minAffection,omitempty"`
	KnownMove             string `json:"knownMove,omitempty"`
	KnownMoveType         string `json:"knownMoveType,omitempty"`
	PartySpecies          string `json:"partySpecies,omitempty"`
	PartyType             string `json:"partyType,omitempty"`
	TradeSpecies          string `json:"tradeSpecies,omitempty"`
	NeedsOverworldRain    bool   `json:"needsOverworldRain,omitempty"`
	TurnUpsideDown        bool   `json:"turnUpsideDown,omitempty"`
	RelativePhysicalStats *int   `json:"relativePhysicalStats,omitempty"`
	Gender                int    `json:"gender,omitempty"`
	NeedsTrade            bool   `json:"needsTrade,omitempty"`
}

// ChainEntry is one stage of a flattened evolution chain, in traversal
// order. Details describes how to reach this stage from its predecessor
// and is nil for the base stage.
type ChainEntry struct {
	SpeciesNumber int
	Details       *EvolutionDetails
}

// Wire types below mirror the slices of the PokeAPI responses we consume.

type pokemonResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
	Stats []struct {
		BaseStat int `json:"base_stat"`
		Stat     struct {
			Name string `json:"name"`
		} `json:"stat"`
	} `json:"stats"`
	Species struct {
		URL string `json:"url"`
	} `json:"species"`
}

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type speciesResponse struct {
	FlavorTextEntries []struct {
		FlavorText string `json:"flavor_text"`
		Language   struct {
			Name string `json:"name"`
		} `json:"language"`
	} `json:"flavor_text_entries"`
	Generation     namedResource  `json:"generation"`
	Habitat        *namedResource `json:"habitat"`
	EvolutionChain struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
}

type evolutionDetail struct {
	Trigger               namedResource  `json:"trigger"`
	MinLevel              int            `json:"min_level"`
	Item                  *namedResource `json:"item"`
	TimeOfDay             string         `json:"time_of_day"`
	Location              *namedResource `json:"location"`
	MinHappiness          int            `json:"min_happiness"`
	MinBeauty             int            `json:"min_beauty"`
	MinAffection          int            `json:"min_affection"`
	KnownMove             *namedResource `json:"known_move"`
	KnownMoveType         *namedResource `json:"known_move_type"`
	PartySpecies          *namedResource `json:"party_species"`
	PartyType             *namedResource `json:"party_type"`
	TradeSpecies          *namedResource `json:"trade_species"`
	NeedsOverworldRain    bool           `json:"needs_overworld_rain"`
	TurnUpsideDown        bool           `json:"turn_upside_down"`
	RelativePhysicalStats *int           `json:"relative_physical_stats"`
	Gender                int            `json:"gender"`
}

type chainLink struct {
	Species          namedResource     `json:"species"`
	EvolutionDetails []evolutionDetail `json:"evolution_details"`
	EvolvesTo        []chainLink       `json:"evolves_to"`
}

type chainResponse struct {
	Chain chainLink `json:"chain"`
}
