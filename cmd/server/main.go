package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ducminhle1904/strategy-sim/internal/api"
	"github.com/ducminhle1904/strategy-sim/internal/config"
	"github.com/ducminhle1904/strategy-sim/internal/logger"
	"github.com/ducminhle1904/strategy-sim/internal/monitoring"
	"github.com/ducminhle1904/strategy-sim/internal/presets"
)

func main() {
	log.Println("🚀 Strategy Simulator server starting...")

	if err := godotenv.Load(); err == nil {
		log.Println("✅ Loaded .env")
	}

	cfg := config.LoadServer()

	runLog, err := logger.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatalf("❌ Failed to open run log: %v", err)
	}
	defer runLog.Close()

	store, err := presets.NewStore(cfg.Presets.Path)
	if err != nil {
		log.Fatalf("❌ Failed to open preset store: %v", err)
	}
	log.Printf("✅ Preset store ready (%d presets)", len(store.List()))

	health := monitoring.NewHealthChecker()
	monitoring.StartMetricsServer(cfg.Monitoring.PrometheusPort)
	monitoring.StartHealthServer(cfg.Monitoring.HealthPort, health)
	log.Printf("✅ Metrics on :%d, health on :%d", cfg.Monitoring.PrometheusPort, cfg.Monitoring.HealthPort)

	server := api.NewServer(cfg, store, runLog, health)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Println("⏳ Shutting down...")
		if err := server.Shutdown(); err != nil {
			log.Printf("⚠️ Shutdown error: %v", err)
		}
	}()

	log.Printf("✅ API listening on :%d", cfg.API.Port)
	if err := server.Start(); err != nil {
		log.Fatalf("❌ Server error: %v", err)
	}
	log.Println("👋 Server stopped")
}
