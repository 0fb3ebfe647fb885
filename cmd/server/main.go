package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"billscan/internal/config"
	"billscan/internal/extractor/gemini"
	"billscan/internal/fetcher"
	"billscan/internal/handler"
	"billscan/internal/router"
	"billscan/internal/service"
	"billscan/internal/validator"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Parser.APIKey == "" {
		// Startup-class misconfiguration. The server still starts so probes
		// and error responses work, but every extraction will fail with
		// MISSING_CREDENTIAL until the key is set.
		log.Printf("warning: BILLSCAN_PARSER_API_KEY is not set")
	}

	docFetcher := fetcher.NewHTTPFetcher(&cfg.Fetcher)
	billExtractor := gemini.NewExtractor(&cfg.Parser)

	schemaValidator, err := validator.NewSchemaValidator()
	if err != nil {
		return fmt.Errorf("failed to compile extraction schema: %w", err)
	}

	extractionSvc := service.NewExtractionService(docFetcher, billExtractor, schemaValidator)

	extractH := handler.NewExtractHandler(extractionSvc)
	healthH := handler.NewHealthHandler(billExtractor)

	r := router.Setup(cfg, extractH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Printf("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}
