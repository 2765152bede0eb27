package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sunderapp/sunder/internal/config"
	"github.com/sunderapp/sunder/internal/handlers"
	"github.com/sunderapp/sunder/internal/services"
	"github.com/sunderapp/sunder/internal/sizer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("sunder starting...")
	log.Printf("  Bind: %s:%d", cfg.BindAddress, cfg.Port)
	if cfg.ScanRoot != "" {
		log.Printf("  Scan root override: %s", cfg.ScanRoot)
	}

	// Initialize scanner service
	scanner := services.NewScanner(cfg, sizer.New())

	// Initialize handlers
	h := handlers.New(cfg, scanner)

	// Set up HTTP server
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.BindAddress, cfg.Port),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // No timeout for SSE
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	// Start server
	log.Printf("Server listening on http://%s", server.Addr)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server stopped")
}
