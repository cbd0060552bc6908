package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume-filter/internal/config"
	"resume-filter/internal/handler"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Wiring
	container, err := config.NewContainer(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer container.Close()

	cfg := container.GetConfig()
	appLogger := container.GetLogger()

	// Handlers
	resumeHandler := handler.NewResumeHandler(
		container.IngestionService,
		container.ResumeService,
		cfg.GetMaxFileSize(),
		appLogger,
	)
	healthHandler := handler.NewHealthHandler(container.HealthService)

	// Router
	router := handler.NewRouter(
		resumeHandler,
		healthHandler,
		appLogger,
		cfg.GetCORSAllowedOrigins(),
	)

	server := &http.Server{
		Addr:              ":" + cfg.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run server
	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Graceful shutdown
	select {
	case err := <-serverErr:
		appLogger.Error("Server failed to start", err)
		container.Close()
		os.Exit(1)
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Graceful shutdown failed", err)
	}

	appLogger.Info("Server exited")
}
