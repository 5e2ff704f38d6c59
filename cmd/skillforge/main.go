// Package main is the entry point for the SkillForge backend server.
// It loads configuration, wires the in-memory content store and the
// optional Valkey response cache, and starts the HTTP server with
// graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"skillforge/internal/auth"
	"skillforge/internal/cache"
	"skillforge/internal/config"
	"skillforge/internal/handlers"
	"skillforge/internal/router"
	"skillforge/internal/store"
)

func main() {
	// Structured logger; debug level keeps cache hit/miss visible in dev.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables (plus .env if present).
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"valkey", cfg.ValkeyEnabled(),
	)

	// Hash the admin password once; every login compares against this.
	adminHash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash admin password", "error", err)
		os.Exit(1)
	}
	authSvc := auth.NewService(cfg.AdminEmail, adminHash)

	// The content store is in-memory and seeded at construction; there
	// is no database to connect or migrate.
	contentStore := store.New()

	// Connect to Valkey when configured. The response cache is optional:
	// a nil cache misses on every lookup and the server serves from the
	// store directly.
	var respCache *cache.ResponseCache
	if cfg.ValkeyEnabled() {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		respCache = cache.NewResponseCache(valkeyClient, cache.DefaultResponseTTL)
	} else {
		slog.Warn("valkey not configured — response caching disabled")
	}

	// Create handler groups with their dependencies.
	publicHandlers := handlers.NewPublic(contentStore, respCache)
	dashboardHandlers := handlers.NewDashboard(contentStore, respCache)
	authHandlers := handlers.NewAuth(authSvc)

	// Set up the Chi router with all middleware and routes.
	r := router.New(authSvc, authHandlers, publicHandlers, dashboardHandlers, cfg.AllowedOrigins)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
