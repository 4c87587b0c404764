package main

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/nickalexanderalicea-source/hotel-booker/internal/adapters/catalogapi"
	"github.com/nickalexanderalicea-source/hotel-booker/internal/adapters/observability"
	"github.com/nickalexanderalicea-source/hotel-booker/internal/catalog"
	"github.com/nickalexanderalicea-source/hotel-booker/internal/domain"
	"github.com/nickalexanderalicea-source/hotel-booker/internal/shared"
	mysqlrepo "github.com/nickalexanderalicea-source/hotel-booker/internal/storage/mysql"
)

// The seeder copies the hotel catalog into MySQL so the API can run with
// CATALOG_SOURCE=mysql. Source is the built-in set unless CATALOG_BASE_URL
// points at a remote content API.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Int("workers", cfg.SeedWorkers).
		Str("base", cfg.CatalogBase).
		Msg("seeder starting")

	db, err := mysqlrepo.Open(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.NewRepo(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("schema setup failed")
	}

	hotels, err := loadHotels(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("load catalog failed")
	}

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, h := range hotels {
		h := h

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(h domain.Hotel) {
			defer wg.Done()
			defer sem.Release(1)

			if err := repo.UpsertHotel(ctx, h); err != nil {
				log.Warn().Int64("id", h.ID).Err(err).Msg("seed failed")
				return
			}
			log.Info().Int64("id", h.ID).Str("name", h.Name).Msg("seed ok")
		}(h)
	}

	wg.Wait()
	log.Info().Int("hotels", len(hotels)).Msg("seeding completed")
}

func loadHotels(ctx context.Context, cfg shared.Config) ([]domain.Hotel, error) {
	if cfg.CatalogBase == "" {
		return catalog.NewBuiltin().List(ctx)
	}
	client, err := catalogapi.New(cfg.CatalogBase, cfg.CatalogKey, 5)
	if err != nil {
		return nil, err
	}
	return client.List(ctx)
}
