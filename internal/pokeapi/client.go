package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

var generationPattern = regexp.MustCompile(`/generation/(\d+)/`)

// Client fetches Pokemon data from PokeAPI.
type Client struct {
	client        *http.Client
	baseURL       string
	spriteBaseURL string
	log           *zap.Logger
}

// NewClient creates a PokeAPI client.
func NewClient(baseURL, spriteBaseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL:       strings.TrimRight(baseURL, "/"),
		spriteBaseURL: strings.TrimRight(spriteBaseURL, "/"),
		log:           log,
	}
}

// FetchPokemon fetches one Pokemon by its national number. It never fails:
// on any network or parse error it returns a deterministic fallback record
// so a bulk import can keep going past a bad entry.
func (c *Client) FetchPokemon(ctx context.Context, number int) *PokemonData {
	raw, err := c.getPokemon(ctx, number)
	if err != nil {
		c.log.Warn("falling back to placeholder data",
			zap.Int("number", number),
			zap.Error(err))
		return c.fallback(number)
	}

	data := &PokemonData{
		Number:   raw.ID,
		Name:     capitalizeFirst(raw.Name),
		Type1:    "Normal",
		ImageURL: c.spriteURL(number),
	}

	if len(raw.Types) > 0 {
		data.Type1 = capitalizeFirst(raw.Types[0].Type.Name)
	}
	if len(raw.Types) > 1 {
		data.Type2 = capitalizeFirst(raw.Types[1].Type.Name)
	}

	// Sprite fallback order: official artwork, default sprite, static mirror.
	if raw.Sprites.Other.OfficialArtwork.FrontDefault != "" {
		data.ImageURL = raw.Sprites.Other.OfficialArtwork.FrontDefault
	} else if raw.Sprites.FrontDefault != "" {
		data.ImageURL = raw.Sprites.FrontDefault
	}

	for _, s := range raw.Stats {
		switch s.Stat.Name {
		case "hp":
			data.HP = s.BaseStat
		case "attack":
			data.Attack = s.BaseStat
		case "defense":
			data.Defense = s.BaseStat
		case "special-attack":
			data.SpecialAttack = s.BaseStat
		case "special-defense":
			data.SpecialDefense = s.BaseStat
		case "speed":
			data.Speed = s.BaseStat
		}
	}

	// The species resource carries flavor text, generation and habitat.
	// Losing it is tolerable; the primary record still gets stored.
	if err := c.applySpecies(ctx, raw.Species.URL, data); err != nil {
		c.log.Warn("could not fetch species data",
			zap.Int("number", number),
			zap.Error(err))
	}

	return data
}

func (c *Client) getPokemon(ctx context.Context, number int) (*pokemonResponse, error) {
	url := fmt.Sprintf("%s/pokemon/%d", c.baseURL, number)

	var raw pokemonResponse
	if err := c.getJSON(ctx, url, &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

func (c *Client) applySpecies(ctx context.Context, url string, data *PokemonData) error {
	if url == "" {
		return fmt.Errorf("no species URL for Pokemon %d", data.Number)
	}

	var species speciesResponse
	if err := c.getJSON(ctx, url, &species); err != nil {
		return err
	}

	for _, entry := range species.FlavorTextEntries {
		if entry.Language.Name == "en" {
			// Flavor text comes with embedded form feeds.
			data.Description = strings.TrimSpace(strings.ReplaceAll(entry.FlavorText, "\f", " "))
			break
		}
	}

	if m := generationPattern.FindStringSubmatch(species.Generation.URL); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			data.Generation = n
		}
	}

	if species.Habitat != nil && species.Habitat.Name != "" {
		data.Habitat = capitalizeFirst(strings.ReplaceAll(species.Habitat.Name, "-", " "))
	}

	return nil
}

// fallback synthesizes a record for a Pokemon we could not fetch.
func (c *Client) fallback(number int) *PokemonData {
	return &PokemonData{
		Number:   number,
		Name:     fmt.Sprintf("Pokemon %d", number),
		Type1:    "Normal",
		ImageURL: c.spriteURL(number),
	}
}

func (c *Client) spriteURL(number int) string {
	return fmt.Sprintf("%s/%d.png", c.spriteBaseURL, number)
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("PokeAPI returned status %d for %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response from %s: %w", url, err)
	}

	return nil
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
