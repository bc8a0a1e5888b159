package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wellnessio/wellness-backend/internal/api"
	"github.com/wellnessio/wellness-backend/internal/config"
	"github.com/wellnessio/wellness-backend/internal/logger"
	"github.com/wellnessio/wellness-backend/internal/quotes"
	"github.com/wellnessio/wellness-backend/internal/services"
	"github.com/wellnessio/wellness-backend/internal/store/jsonfile"
)

func main() {
	dataFile := flag.String("data-file", "", "Override WELLNESS_DATA_FILE")
	flag.Parse()

	log := logger.New("wellness-service")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *dataFile != "" {
		cfg.DataFile = *dataFile
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Str("data_file", cfg.DataFile).
		Int("http_port", cfg.HTTPPort).
		Msg("Wellness service starting")

	// -------- Storage layer -----------------
	entryStore := jsonfile.New(cfg.DataFile)
	entryService := services.NewEntryService(entryStore)

	// -------- Quote proxy -------------------
	quoteProvider := quotes.NewProvider(cfg.QuoteURL, cfg.QuoteTimeout())

	// -------- Router & Server --------------
	router := api.NewRouter(entryService, quoteProvider)
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}
