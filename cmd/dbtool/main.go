package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"geoconv-service/internal/adapters/geodesy"
	"geoconv-service/internal/adapters/history"
	"geoconv-service/internal/config"
	"geoconv-service/internal/services"
)

// dbtool prepares the conversion history store and optionally replays a
// JSON array of convert requests into it.
func main() {
	if !config.LoadDotEnv() {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(config.Get("CONFIG_PATH", "geoconv.yaml"))
	if err != nil {
		log.Fatal(err)
	}
	if cfg.History.Driver == config.HistoryNone {
		log.Fatal("HISTORY_DRIVER is none; nothing to initialize")
	}

	ctx := context.Background()

	log.Printf("Initializing %s history schema...", cfg.History.Driver)
	store, err := history.Open(ctx, cfg.History.Driver, cfg.History.DBPath, cfg.History.DatabaseURL)
	if err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	defer store.Close()
	log.Println("Schema ready.")

	seedPath := config.Get("SEED_PATH", "data/seeds/requests.json")
	n, err := seed(ctx, store, cfg.Engine, seedPath)
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("Seeding complete: %d conversions recorded.", n)
}

// seed runs every request in seedPath through the converter so the outcome
// lands in the history store. A missing seed file is skipped.
func seed(ctx context.Context, store *history.Store, engineName, seedPath string) (int, error) {
	data, err := os.ReadFile(seedPath)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("No seed file at %q, skipping.", seedPath)
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("seed history: read %q: %w", seedPath, err)
	}

	var reqs []services.ConvertRequest
	if err := json.Unmarshal(data, &reqs); err != nil {
		return 0, fmt.Errorf("seed history: parse json: %w", err)
	}

	engine, err := geodesy.New(engineName)
	if err != nil {
		return 0, fmt.Errorf("seed history: %w", err)
	}
	defer engine.Close()

	conv := services.NewConverter(services.NewTransformCache(engine), store.Log, zap.NewNop())
	for i, req := range reqs {
		if req.Type == "" {
			return i, fmt.Errorf("seed history: item at index %d: type cannot be empty", i+1)
		}
		// failed conversions are recorded too
		_, _ = conv.Convert(ctx, req)
	}

	return len(reqs), nil
}
