package pokeapi

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var speciesPattern = regexp.MustCompile(`/pokemon-species/(\d+)/`)

// FetchEvolutionChain resolves the evolution chain for a Pokemon into a
// flat, depth-first ordered list of stages. Each stage carries the
// conditions required to reach it from its predecessor. Any failure
// yields an empty chain; this data is display-only and never persisted.
func (c *Client) FetchEvolutionChain(ctx context.Context, number int) []ChainEntry {
	url := fmt.Sprintf("%s/pokemon-species/%d", c.baseURL, number)

	var species speciesResponse
	if err := c.getJSON(ctx, url, &species); err != nil {
		c.log.Warn("could not fetch species for evolution chain",
			zap.Int("number", number),
			zap.Error(err))
		return nil
	}

	if species.EvolutionChain.URL == "" {
		return nil
	}

	var chain chainResponse
	if err := c.getJSON(ctx, species.EvolutionChain.URL, &chain); err != nil {
		c.log.Warn("could not fetch evolution chain",
			zap.Int("number", number),
			zap.Error(err))
		return nil
	}

	var entries []ChainEntry
	flattenChain(chain.Chain, &entries)
	return entries
}

// flattenChain walks the nested chain depth-first, appending each species
// in traversal order.
func flattenChain(link chainLink, out *[]ChainEntry) {
	m := speciesPattern.FindStringSubmatch(link.Species.URL)
	if m == nil {
		return
	}
	num, err := strconv.Atoi(m[1])
	if err != nil {
		return
	}

	entry := ChainEntry{SpeciesNumber: num}
	if len(link.EvolutionDetails) > 0 {
		entry.Details = parseEvolutionDetails(link.EvolutionDetails[0])
	}
	*out = append(*out, entry)

	for _, next := range link.EvolvesTo {
		flattenChain(next, out)
	}
}

func parseEvolutionDetails(d evolutionDetail) *EvolutionDetails {
	details := &EvolutionDetails{
		Trigger:               d.Trigger.Name,
		Level:                 d.MinLevel,
		TimeOfDay:             d.TimeOfDay,
		MinHappiness:          d.MinHappiness,
		MinBeauty:             d.MinBeauty,
		MinAffection:          d.MinAffection,
		NeedsOverworldRain:    d.NeedsOverworldRain,
		TurnUpsideDown:        d.TurnUpsideDown,
		RelativePhysicalStats: d.RelativePhysicalStats,
		Gender:                d.Gender,
		NeedsTrade:            d.Trigger.Name == "trade",
	}

	if d.Item != nil {
		details.Item = capitalizeFirst(strings.ReplaceAll(d.Item.Name, "-", " "))
	}
	if d.Location != nil {
		details.Location = capitalizeFirst(strings.ReplaceAll(d.Location.Name, "-", " "))
	}
	if d.KnownMove != nil {
		details.KnownMove = capitalizeFirst(strings.ReplaceAll(d.KnownMove.Name, "-", " "))
	}
	if d.KnownMoveType != nil {
		details.KnownMoveType = capitalizeFirst(d.KnownMoveType.Name)
	}
	if d.PartySpecies != nil {
		details.PartySpecies = capitalizeFirst(strings.ReplaceAll(d.PartySpecies.Name, "-", " "))
	}
	if d.PartyType != nil {
		details.PartyType = capitalizeFirst(d.PartyType.Name)
	}
	if d.TradeSpecies != nil {
		details.TradeSpecies = capitalizeFirst(strings.ReplaceAll(d.TradeSpecies.Name, "-", " "))
	}

	return details
}
