package pokeapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFetchEvolutionChainFlattensNestedStages(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pokemon-species/1":
			fmt.Fprintf(w, `{
				"flavor_text_entries": [],
				"generation": {"name": "", "url": ""},
				"evolution_chain": {"url": "%s/evolution-chain/1"}
			}`, srv.URL)
		case "/evolution-chain/1":
			fmt.Fprint(w, `{
				"chain": {
					"species": {"name": "bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon-species/1/"},
					"evolution_details": [],
					"evolves_to": [{
						"species": {"name": "ivysaur", "url": "https://pokeapi.co/api/v2/pokemon-species/2/"},
						"evolution_details": [{"trigger": {"name": "level-up", "url": ""}, "min_level": 16}],
						"evolves_to": [{
							"species": {"name": "venusaur", "url": "https://pokeapi.co/api/v2/pokemon-species/3/"},
							"evolution_details": [{"trigger": {"name": "level-up", "url": ""}, "min_level": 32}],
							"evolves_to": []
						}]
					}]
				}
			}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, spriteMirror, 5*time.Second, zap.NewNop())
	chain := client.FetchEvolutionChain(context.Background(), 1)
	require.Len(t, chain, 3)

	assert.Equal(t, 1, chain[0].SpeciesNumber)
	assert.Nil(t, chain[0].Details, "the base stage has no conditions")

	require.NotNil(t, chain[1].Details)
	assert.Equal(t, 2, chain[1].SpeciesNumber)
	assert.Equal(t, "level-up", chain[1].Details.Trigger)
	assert.Equal(t, 16, chain[1].Details.Level)
	assert.False(t, chain[1].Details.NeedsTrade)

	require.NotNil(t, chain[2].Details)
	assert.Equal(t, 3, chain[2].SpeciesNumber)
	assert.Equal(t, 32, chain[2].Details.Level)
}

func TestFetchEvolutionChainBranchesDepthFirst(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pokemon-species/133":
			fmt.Fprintf(w, `{
				"flavor_text_entries": [],
				"generation": {"name": "", "url": ""},
				"evolution_chain": {"url": "%s/evolution-chain/67"}
			}`, srv.URL)
		case "/evolution-chain/67":
			fmt.Fprint(w, `{
				"chain": {
					"species": {"name": "eevee", "url": "https://pokeapi.co/api/v2/pokemon-species/133/"},
					"evolution_details": [],
					"evolves_to": [
						{
							"species": {"name": "vaporeon", "url": "https://pokeapi.co/api/v2/pokemon-species/134/"},
							"evolution_details": [{"trigger": {"name": "use-item", "url": ""}, "item": {"name": "water-stone", "url": ""}}],
							"evolves_to": []
						},
						{
							"species": {"name": "espeon", "url": "https://pokeapi.co/api/v2/pokemon-species/196/"},
							"evolution_details": [{"trigger": {"name": "level-up", "url": ""}, "min_happiness": 160, "time_of_day": "day"}],
							"evolves_to": []
						}
					]
				}
			}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, spriteMirror, 5*time.Second, zap.NewNop())
	chain := client.FetchEvolutionChain(context.Background(), 133)
	require.Len(t, chain, 3)

	assert.Equal(t, 133, chain[0].SpeciesNumber)
	assert.Equal(t, 134, chain[1].SpeciesNumber)
	assert.Equal(t, 196, chain[2].SpeciesNumber)

	require.NotNil(t, chain[1].Details)
	assert.Equal(t, "Water stone", chain[1].Details.Item)

	require.NotNil(t, chain[2].Details)
	assert.Equal(t, 160, chain[2].Details.MinHappiness)
	assert.Equal(t, "day", chain[2].Details.TimeOfDay)
}

func TestFetchEvolutionChainTradeCondition(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pokemon-species/93":
			fmt.Fprintf(w, `{
				"flavor_text_entries": [],
				"generation": {"name": "", "url": ""},
				"evolution_chain": {"url": "%s/evolution-chain/34"}
			}`, srv.URL)
		case "/evolution-chain/34":
			fmt.Fprint(w, `{
				"chain": {
					"species": {"name": "haunter", "url": "https://pokeapi.co/api/v2/pokemon-species/93/"},
					"evolution_details": [],
					"evolves_to": [{
						"species": {"name": "gengar", "url": "https://pokeapi.co/api/v2/pokemon-species/94/"},
						"evolution_details": [{"trigger": {"name": "trade", "url": ""}}],
						"evolves_to": []
					}]
				}
			}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, spriteMirror, 5*time.Second, zap.NewNop())
	chain := client.FetchEvolutionChain(context.Background(), 93)
	require.Len(t, chain, 2)
	require.NotNil(t, chain[1].Details)
	assert.True(t, chain[1].Details.NeedsTrade)
	assert.Equal(t, "trade", chain[1].Details.Trigger)
}

func TestFetchEvolutionChainEmptyOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, spriteMirror, time.Second, zap.NewNop())
	assert.Empty(t, client.FetchEvolutionChain(context.Background(), 1))
}

func TestFetchEvolutionChainEmptyWithoutChainURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"flavor_text_entries": [],
			"generation": {"name": "", "url": ""},
			"evolution_chain": {"url": ""}
		}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, spriteMirror, time.Second, zap.NewNop())
	assert.Empty(t, client.FetchEvolutionChain(context.Background(), 132))
}
