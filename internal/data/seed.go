package data

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"pokerealmap/internal/pokeapi"
	"pokerealmap/internal/progress"
)

// PokemonSource supplies creature records during seeding. Fetches never
// fail: the source substitutes fallback data for any bad record.
type PokemonSource interface {
	FetchPokemon(ctx context.Context, number int) *pokeapi.PokemonData
}

// seedRun is the single-slot token for an in-flight seeding pass.
// Concurrent callers wait on the existing run instead of starting a
// second one.
type seedRun struct {
	done chan struct{}
	err  error
}

// Seeder keeps the regions and pokemon collections populated.
type Seeder struct {
	store  *Store
	source PokemonSource
	sink   *progress.Sink
	log    *zap.Logger

	rosterSize int
	batchSize  int

	mu  sync.Mutex
	run *seedRun
}

// NewSeeder creates a seeder over an open store.
func NewSeeder(store *Store, source PokemonSource, sink *progress.Sink, rosterSize, batchSize int, log *zap.Logger) *Seeder {
	return &Seeder{
		store:      store,
		source:     source,
		sink:       sink,
		log:        log,
		rosterSize: rosterSize,
		batchSize:  batchSize,
	}
}

// EnsureSeeded makes sure both reference collections are populated and
// current. When a run is already in flight the caller waits for it and
// shares its outcome.
func (s *Seeder) EnsureSeeded(ctx context.Context) error {
	return s.runOnce(ctx, false)
}

// Refresh clears and re-imports the pokemon collection even if it is
// already populated.
func (s *Seeder) Refresh(ctx context.Context) error {
	return s.runOnce(ctx, true)
}

func (s *Seeder) runOnce(ctx context.Context, force bool) error {
	s.mu.Lock()
	if existing := s.run; existing != nil {
		s.mu.Unlock()
		select {
		case <-existing.done:
			return existing.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	run := &seedRun{done: make(chan struct{})}
	s.run = run
	s.mu.Unlock()

	run.err = s.seed(ctx, force)

	s.mu.Lock()
	s.run = nil
	s.mu.Unlock()
	close(run.done)

	return run.err
}

func (s *Seeder) seed(ctx context.Context, force bool) error {
	if err := s.syncRegions(ctx); err != nil {
		return err
	}
	return s.syncPokemon(ctx, force)
}

// syncRegions seeds the static region list. A count mismatch against the
// reference list means the list changed in code, and the table is fully
// replaced; a matching count leaves the table alone.
func (s *Seeder) syncRegions(ctx context.Context) error {
	count, err := s.store.CountRegions(ctx)
	if err != nil {
		return err
	}

	if count == len(unRegions) {
		return nil
	}

	if count != 0 {
		s.log.Info("region list changed, re-syncing",
			zap.Int("stored", count),
			zap.Int("reference", len(unRegions)))
	}

	if err := s.store.replaceRegions(ctx); err != nil {
		return fmt.Errorf("failed to seed regions: %w", err)
	}

	s.log.Info("seeded regions", zap.Int("count", len(unRegions)))
	return nil
}

// syncPokemon bulk-imports the full roster when the collection is empty
// (always the case right after a schema upgrade). Fetches run in
// sequential batches, each batch's requests concurrent, which bounds peak
// outstanding requests to the batch size.
func (s *Seeder) syncPokemon(ctx context.Context, force bool) error {
	count, err := s.store.CountPokemon(ctx)
	if err != nil {
		return err
	}
	if count > 0 && !force {
		return nil
	}

	total := s.rosterSize
	s.log.Info("fetching pokemon roster", zap.Int("total", total))
	s.sink.Notify(0, total, "Starting to fetch Pokemon data from API...")

	fetched := make([]*pokeapi.PokemonData, total)
	for start := 0; start < total; start += s.batchSize {
		end := start + s.batchSize
		if end > total {
			end = total
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				fetched[i] = s.source.FetchPokemon(ctx, i+1)
			}(i)
		}
		wg.Wait()

		s.sink.Notify(end, total, fmt.Sprintf("Fetching Pokemon data: %d/%d", end, total))
	}

	s.sink.Notify(total, total, "Saving data to database...")

	list := make([]Pokemon, total)
	for i, p := range fetched {
		list[i] = Pokemon{
			Number:         p.Number,
			Name:           p.Name,
			Type1:          p.Type1,
			Type2:          p.Type2,
			ImageURL:       p.ImageURL,
			Description:    p.Description,
			Generation:     p.Generation,
			Habitat:        p.Habitat,
			HP:             p.HP,
			Attack:         p.Attack,
			Defense:        p.Defense,
			SpecialAttack:  p.SpecialAttack,
			SpecialDefense: p.SpecialDefense,
			Speed:          p.Speed,
		}
	}

	if err := s.store.replacePokemon(ctx, list); err != nil {
		s.sink.Notify(0, total, "Error occurred while fetching data")
		return fmt.Errorf("failed to seed pokemon: %w", err)
	}

	s.log.Info("seeded pokemon", zap.Int("count", total))
	s.sink.Notify(total, total, "Done!")
	return nil
}
