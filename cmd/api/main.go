package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/nickalexanderalicea-source/hotel-booker/internal/adapters/catalogapi"
	server "github.com/nickalexanderalicea-source/hotel-booker/internal/adapters/httpserver"
	"github.com/nickalexanderalicea-source/hotel-booker/internal/adapters/observability"
	redisad "github.com/nickalexanderalicea-source/hotel-booker/internal/adapters/redis"
	"github.com/nickalexanderalicea-source/hotel-booker/internal/app"
	"github.com/nickalexanderalicea-source/hotel-booker/internal/catalog"
	"github.com/nickalexanderalicea-source/hotel-booker/internal/domain"
	"github.com/nickalexanderalicea-source/hotel-booker/internal/shared"
	mysqlrepo "github.com/nickalexanderalicea-source/hotel-booker/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	cat := openCatalog(cfg)

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	store := redisad.NewStore(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	q := app.NewQueryService(cat, cache, cfg.CacheTTL)
	b := app.NewBookingService(store, store)

	srv := server.New(cfg.RateRPS)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, B: b, Sessions: app.NewSessionManager(q, b)})

	log.Info().Str("addr", cfg.HTTPAddr).Str("catalog", cfg.CatalogSource).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

// openCatalog picks the hotel source from config: the built-in set by
// default, MySQL when seeded, or a remote content API.
func openCatalog(cfg shared.Config) domain.Catalog {
	switch cfg.CatalogSource {
	case "mysql":
		db, err := mysqlrepo.Open(cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		return mysqlrepo.NewRepo(db)
	case "api":
		client, err := catalogapi.New(cfg.CatalogBase, cfg.CatalogKey, 5)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize catalog client")
		}
		return client
	default:
		return catalog.NewBuiltin()
	}
}
