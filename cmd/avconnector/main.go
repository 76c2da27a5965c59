package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jmanzanog/borsa-alphavantage/internal/infrastructure/config"
	"github.com/jmanzanog/borsa-alphavantage/internal/infrastructure/marketdata"
	"github.com/jmanzanog/borsa-alphavantage/internal/infrastructure/marketdata/alphavantage"
	httpHandler "github.com/jmanzanog/borsa-alphavantage/internal/interfaces/http"
)

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupLogger configures and returns a structured logger with source information
func setupLogger(level string) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource: true,
		Level:     parseLogLevel(level),
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, opts))
	slog.SetDefault(logger)
	return logger
}

// createUpstream builds the Alpha Vantage transport for the configured mode
func createUpstream(cfg *config.Config) *alphavantage.Client {
	var client *alphavantage.Client
	switch cfg.Mode {
	case config.ModeRapidAPI:
		client = alphavantage.NewRapidAPIClient(cfg.APIKey)
	default:
		client = alphavantage.NewClient(cfg.APIKey)
	}
	if cfg.BaseURL != "" {
		client.SetBaseURL(cfg.BaseURL)
	}
	if cfg.HTTPTimeout > 0 {
		client.SetTimeout(cfg.HTTPTimeout)
	}
	return client
}

// buildServer creates and configures the HTTP server with all routes and handlers
func buildServer(cfg *config.Config, connector marketdata.Connector) *http.Server {
	router := gin.New()
	router.Use(gin.Recovery(), httpHandler.RequestLogger())
	handler := httpHandler.NewHandler(connector)
	httpHandler.SetupRoutes(router, handler)

	return &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// run contains the main application logic without os.Exit calls
func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	setupLogger(cfg.LogLevel)

	connector := alphavantage.NewConnector(createUpstream(cfg))
	slog.Info("Using market data connector",
		"connector", connector.Name(), "vendor", connector.Vendor(), "mode", cfg.Mode)

	server := buildServer(cfg, connector)

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "host", cfg.ServerHost, "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
		slog.Info("Received shutdown signal")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	slog.Info("Server exited gracefully")
	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error("Application error", "error", err)
		os.Exit(1)
	}
}
