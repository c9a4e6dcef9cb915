package main

import (
	"flag"
	"log"
	"os"

	"StockHunter/internal/di"
	"StockHunter/pkg/config"

	"github.com/joho/godotenv"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	// Load .env if present, then config with env overrides
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("dotenv load: %v", err)
	}

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s screener=%s", cfg.Environment, cfg.Screener.BaseURL)

	// Wire DI: Initialize all dependencies
	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	// Run application (blocks until signal)
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
