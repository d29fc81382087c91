package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"donation-match-service/internal/adapters/cache"
	"donation-match-service/internal/adapters/repositories"
	"donation-match-service/internal/api"
	"donation-match-service/internal/config"
	"donation-match-service/internal/matching"
	"donation-match-service/internal/platform/db"
	"donation-match-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, optional Redis) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	repo, cleanup, err := buildRepository()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	params, err := loadParams()
	if err != nil {
		log.Fatal(err)
	}

	engine, err := matching.NewEngine(params)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(repo, engine)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// buildRepository selects the donation store (Postgres when DATABASE_URL is
// set, SQLite otherwise) and optionally wraps it in a Redis listing cache.
func buildRepository() (ports.DonationRepository, func(), error) {
	var repo ports.DonationRepository
	cleanup := func() {}

	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		pg, err := db.OpenPostgres(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		repo = repositories.NewPostgresDonationRepository(pg)
		cleanup = func() { pg.Close() }
	} else {
		dbPath := config.Get("DB_PATH", "data/app.db")
		seedPath := config.Get("SEED_PATH", "data/seeds/donations.json")

		lite, err := db.OpenSqlite(dbPath)
		if err != nil {
			return nil, nil, err
		}

		// Initialize schema and seed demo data on startup for local runs.
		if err := repositories.InitSqliteSchema(lite); err != nil {
			lite.Close()
			return nil, nil, err
		}
		if err := repositories.SeedSqliteFromJSON(lite, seedPath, time.Now()); err != nil {
			lite.Close()
			return nil, nil, err
		}

		repo = repositories.NewSqliteDonationRepository(lite)
		cleanup = func() { lite.Close() }
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if strings.TrimSpace(redisAddr) == "" {
		return repo, cleanup, nil
	}

	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	ttlSeconds, err := config.GetFloat("DONATION_CACHE_TTL_SECONDS", 30)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	cached, err := cache.NewRedisDonationCache(client, repo, time.Duration(ttlSeconds*float64(time.Second)))
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	innerCleanup := cleanup
	return cached, func() {
		_ = client.Close()
		innerCleanup()
	}, nil
}

// loadParams resolves the engine tuning constants from the environment,
// falling back to the documented defaults.
func loadParams() (matching.Params, error) {
	p := matching.DefaultParams()

	var err error
	if p.AverageSpeedKmh, err = config.GetFloat("AVERAGE_SPEED_KMH", p.AverageSpeedKmh); err != nil {
		return matching.Params{}, err
	}
	if p.DistanceHorizonKm, err = config.GetFloat("DISTANCE_HORIZON_KM", p.DistanceHorizonKm); err != nil {
		return matching.Params{}, err
	}
	if p.UrgencyHorizonMinutes, err = config.GetFloat("URGENCY_HORIZON_MINUTES", p.UrgencyHorizonMinutes); err != nil {
		return matching.Params{}, err
	}
	if p.DistanceWeight, err = config.GetFloat("DISTANCE_WEIGHT", p.DistanceWeight); err != nil {
		return matching.Params{}, err
	}
	if p.UrgencyWeight, err = config.GetFloat("URGENCY_WEIGHT", p.UrgencyWeight); err != nil {
		return matching.Params{}, err
	}

	return p, nil
}
