package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/api"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/config"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/data"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/logger"
)

func main() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	cfgPath := os.Getenv("FLIP_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalw("failed to load config", "path", cfgPath, "error", err)
	}

	// Warm the table cache so a broken dataset fails at startup, not on the
	// first request.
	cache := data.NewTableCache()
	records, err := cache.Get(cfg.DataFile)
	if err != nil {
		log.Fatalw("failed to load reference data", "path", cfg.DataFile, "error", err)
	}
	log.Infow("reference data loaded", "path", cfg.DataFile, "records", len(records))

	if os.Getenv("FLIP_ENV") != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(cfg, cache, log)

	addr := fmt.Sprintf(":%s", port)
	log.Infow("starting API server", "addr", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalw("server exited", "error", err)
	}
}
