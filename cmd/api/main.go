// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

// Command api is the entry point for the Starchive HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/starchive/starchive/internal/api"
	"github.com/starchive/starchive/internal/catalog/film"
	"github.com/starchive/starchive/internal/catalog/image"
	"github.com/starchive/starchive/internal/catalog/person"
	"github.com/starchive/starchive/internal/catalog/planet"
	"github.com/starchive/starchive/internal/catalog/resource"
	"github.com/starchive/starchive/internal/catalog/rest"
	"github.com/starchive/starchive/internal/catalog/species"
	"github.com/starchive/starchive/internal/catalog/starship"
	"github.com/starchive/starchive/internal/catalog/vehicle"
	"github.com/starchive/starchive/internal/platform/config"
	"github.com/starchive/starchive/internal/platform/constants"
	"github.com/starchive/starchive/internal/platform/migration"
	"github.com/starchive/starchive/internal/platform/postgres"
	redisstore "github.com/starchive/starchive/internal/platform/redis"
	"github.com/starchive/starchive/internal/platform/sec"
	"github.com/starchive/starchive/internal/users/auth"
)

func main() {
	// Local development convenience. Missing .env files are not an error.
	_ = godotenv.Load()

	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := postgres.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Auth Service ───────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	userRepository := auth.NewUserRepository(pool)
	sessionRepository := auth.NewSessionRepository(pool)
	resetTokenRepository := auth.NewResetTokenRepository(rdb)
	sessionIndex := auth.NewSessionIndex(rdb)
	authService := auth.NewService(userRepository, sessionRepository, resetTokenRepository, sessionIndex, jwtSvc)
	authHandler := auth.NewHandler(authService)

	// ── 7. Catalogue Wiring ───────────────────────────────────────────────
	filmStore := film.NewStore(pool, cfg.PublicBaseURL)
	personStore := person.NewStore(pool, cfg.PublicBaseURL)
	planetStore := planet.NewStore(pool, cfg.PublicBaseURL)
	speciesStore := species.NewStore(pool, cfg.PublicBaseURL)
	starshipStore := starship.NewStore(pool, cfg.PublicBaseURL)
	vehicleStore := vehicle.NewStore(pool, cfg.PublicBaseURL)
	imageStore := image.NewStore(pool, cfg.PublicBaseURL)

	// Every catalogue that can appear on the right side of a relation URL
	// registers its lookup here.
	resolver := resource.NewResolver(resource.Registry{
		resource.KindFilms:     filmStore.ResolveURL,
		resource.KindPeople:    personStore.ResolveURL,
		resource.KindPlanets:   planetStore.ResolveURL,
		resource.KindSpecies:   speciesStore.ResolveURL,
		resource.KindStarships: starshipStore.ResolveURL,
		resource.KindVehicles:  vehicleStore.ResolveURL,
		resource.KindImages:    imageStore.ResolveURL,
	})

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return postgres.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,

		Films:     catalogHandler[film.Film, *film.Film](film.Descriptor, filmStore, resolver, log, film.Validate),
		People:    catalogHandler[person.Person, *person.Person](person.Descriptor, personStore, resolver, log, person.Validate),
		Planets:   catalogHandler[planet.Planet, *planet.Planet](planet.Descriptor, planetStore, resolver, log, planet.Validate),
		Species:   catalogHandler[species.Species, *species.Species](species.Descriptor, speciesStore, resolver, log, species.Validate),
		Starships: catalogHandler[starship.Starship, *starship.Starship](starship.Descriptor, starshipStore, resolver, log, starship.Validate),
		Vehicles:  catalogHandler[vehicle.Vehicle, *vehicle.Vehicle](vehicle.Descriptor, vehicleStore, resolver, log, vehicle.Validate),
		Images:    catalogHandler[image.Image, *image.Image](image.Descriptor, imageStore, resolver, log, image.Validate),
	}

	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	server := api.NewServer(appCtx, cfg, log, jwtSvc, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// catalogHandler assembles the service + REST handler pair for one catalogue.
func catalogHandler[T any, P resource.Entity[T]](
	descriptor resource.Descriptor,
	store resource.Store[T],
	resolver *resource.Resolver,
	logger *slog.Logger,
	validate func(*T) error,
) *rest.Handler[T, P] {
	service := resource.NewService[T, P](resource.Config[T]{
		Descriptor: descriptor,
		Store:      store,
		Resolver:   resolver,
		Logger:     logger,
		Validate:   validate,
	})

	return rest.NewHandler[T, P](service)
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
