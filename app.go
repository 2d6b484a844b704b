package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"pokerealmap/internal/config"
	"pokerealmap/internal/data"
	"pokerealmap/internal/pokeapi"
	"pokerealmap/internal/progress"
)

// App struct
type App struct {
	ctx     context.Context
	cfg     *config.Config
	log     *zap.Logger
	manager *data.Manager
	client  *pokeapi.Client
	sink    *progress.Sink

	seederMu sync.Mutex
	seeder   *data.Seeder
}

// EvolutionStage is one step of an evolution chain resolved against the
// local store, in display order.
type EvolutionStage struct {
	ID       int64                     `json:"id"`
	Name     string                    `json:"name"`
	Number   int                       `json:"number"`
	ImageURL string                    `json:"image_url,omitempty"`
	Details  *pokeapi.EvolutionDetails `json:"evolutionDetails,omitempty"`
}

// NewApp creates a new App application struct
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:     cfg,
		log:     log,
		manager: data.NewManager(dbPath, log),
		client: pokeapi.NewClient(
			cfg.PokeAPI.BaseURL,
			cfg.PokeAPI.SpriteBaseURL,
			time.Duration(cfg.PokeAPI.TimeoutSeconds)*time.Second,
			log,
		),
		sink: progress.NewSink(),
	}, nil
}

// startup is called when the app starts
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	a.sink.Set(a.emitProgress)

	// Open the store and seed in the background; the frontend follows
	// along through seed:progress events.
	go func() {
		seeder, err := a.ensureSeeder(ctx)
		if err != nil {
			a.log.Error("failed to open database", zap.Error(err))
			a.emitSeedError(err)
			return
		}
		if err := seeder.EnsureSeeded(ctx); err != nil {
			a.log.Error("seeding failed", zap.Error(err))
			a.emitSeedError(err)
			return
		}
		a.emitSeedComplete()
	}()
}

// shutdown is called when the app is closing
func (a *App) shutdown(ctx context.Context) {
	a.sink.Set(nil)
	if err := a.manager.Close(); err != nil {
		a.log.Warn("failed to close database", zap.Error(err))
	}
	a.log.Sync()
}

// ensureSeeder opens the store (coalesced with any concurrent open) and
// wires the seeder over it. The startup goroutine and bound methods can
// race here, and the seeder's run de-duplication only holds when they all
// share one instance, so the lazy init is mutex-guarded.
func (a *App) ensureSeeder(ctx context.Context) (*data.Seeder, error) {
	store, err := a.manager.Ensure(ctx)
	if err != nil {
		return nil, err
	}

	a.seederMu.Lock()
	defer a.seederMu.Unlock()
	if a.seeder == nil {
		a.seeder = data.NewSeeder(store, a.client, a.sink,
			a.cfg.Seed.RosterSize, a.cfg.Seed.BatchSize, a.log)
	}
	return a.seeder, nil
}

func (a *App) store() (*data.Store, error) {
	return a.manager.Ensure(a.ctx)
}

// ListPokemon returns the full roster.
func (a *App) ListPokemon() ([]data.Pokemon, error) {
	store, err := a.store()
	if err != nil {
		return nil, err
	}
	return store.ListPokemon(a.ctx)
}

// GetPokemon returns one Pokemon by store key, or nil.
func (a *App) GetPokemon(id int64) (*data.Pokemon, error) {
	store, err := a.store()
	if err != nil {
		return nil, err
	}
	return store.GetPokemon(a.ctx, id)
}

// GetPokemonByNumber returns one Pokemon by national number, or nil.
func (a *App) GetPokemonByNumber(number int) (*data.Pokemon, error) {
	store, err := a.store()
	if err != nil {
		return nil, err
	}
	return store.GetPokemonByNumber(a.ctx, number)
}

// ListRegions returns all regions with parsed boundaries.
func (a *App) ListRegions() ([]data.Region, error) {
	store, err := a.store()
	if err != nil {
		return nil, err
	}
	return store.ListRegions(a.ctx)
}

// GetRegion returns one region by store key, or nil.
func (a *App) GetRegion(id int64) (*data.Region, error) {
	store, err := a.store()
	if err != nil {
		return nil, err
	}
	return store.GetRegion(a.ctx, id)
}

// GetRegionCenters returns the display center per region code.
func (a *App) GetRegionCenters() map[string][2]float64 {
	return data.RegionCenters()
}

// GetPokemonRegions returns the region ids a Pokemon is assigned to.
func (a *App) GetPokemonRegions(pokemonID int64) ([]int64, error) {
	store, err := a.store()
	if err != nil {
		return nil, err
	}
	return store.GetPokemonRegions(a.ctx, pokemonID)
}

// SetPokemonRegions replaces a Pokemon's full region assignment.
func (a *App) SetPokemonRegions(pokemonID int64, regionIDs []int64) error {
	store, err := a.store()
	if err != nil {
		return err
	}
	return store.SetPokemonRegions(a.ctx, pokemonID, regionIDs)
}

// GetUserPokemon returns the user state for one Pokemon, or nil.
func (a *App) GetUserPokemon(pokemonID int64) (*data.UserPokemon, error) {
	store, err := a.store()
	if err != nil {
		return nil, err
	}
	return store.GetUserPokemon(a.ctx, pokemonID)
}

// ListUserPokemon returns all user state rows.
func (a *App) ListUserPokemon() ([]data.UserPokemon, error) {
	store, err := a.store()
	if err != nil {
		return nil, err
	}
	return store.ListUserPokemon(a.ctx)
}

// SetCaught toggles the caught flag for one Pokemon.
func (a *App) SetCaught(pokemonID int64, caught bool) error {
	store, err := a.store()
	if err != nil {
		return err
	}
	return store.SetCaught(a.ctx, pokemonID, caught)
}

// SetGames replaces the caught-in games list for one Pokemon.
func (a *App) SetGames(pokemonID int64, games []string) error {
	store, err := a.store()
	if err != nil {
		return err
	}
	return store.SetGames(a.ctx, pokemonID, games)
}

// ListGames returns the known main-series game editions.
func (a *App) ListGames() []data.Game {
	return data.MainSeriesGames
}

// GetEvolutionChain fetches and resolves the evolution chain for a
// Pokemon number. Stages not present in the local store are skipped, and
// any fetch failure yields an empty chain rather than an error.
func (a *App) GetEvolutionChain(number int) ([]EvolutionStage, error) {
	store, err := a.store()
	if err != nil {
		return nil, err
	}

	entries := a.client.FetchEvolutionChain(a.ctx, number)

	stages := make([]EvolutionStage, 0, len(entries))
	for _, entry := range entries {
		p, err := store.GetPokemonByNumber(a.ctx, entry.SpeciesNumber)
		if err != nil {
			a.log.Warn("could not resolve evolution stage",
				zap.Int("number", entry.SpeciesNumber),
				zap.Error(err))
			continue
		}
		if p == nil {
			continue
		}
		stages = append(stages, EvolutionStage{
			ID:       p.ID,
			Name:     p.Name,
			Number:   p.Number,
			ImageURL: p.ImageURL,
			Details:  entry.Details,
		})
	}
	return stages, nil
}

// ExportJSON serializes the user's progress and region assignments.
func (a *App) ExportJSON() (string, error) {
	store, err := a.store()
	if err != nil {
		return "", err
	}

	bundle, err := store.Export(a.ctx)
	if err != nil {
		return "", err
	}

	raw, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize export: %w", err)
	}
	return string(raw), nil
}

// ImportJSON restores progress and region assignments from an exported
// bundle, replacing what is currently stored.
func (a *App) ImportJSON(payload string) error {
	store, err := a.store()
	if err != nil {
		return err
	}

	var bundle data.Bundle
	if err := json.Unmarshal([]byte(payload), &bundle); err != nil {
		return fmt.Errorf("%w: %v", data.ErrInvalidBundle, err)
	}

	return store.Import(a.ctx, &bundle)
}

// RefreshPokedex re-imports the full roster from the external source.
func (a *App) RefreshPokedex() error {
	seeder, err := a.ensureSeeder(a.ctx)
	if err != nil {
		return err
	}
	if err := seeder.Refresh(a.ctx); err != nil {
		a.emitSeedError(err)
		return err
	}
	a.emitSeedComplete()
	return nil
}
