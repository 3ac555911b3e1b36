package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"photomarket/internal/config"
	"photomarket/internal/db"
	"photomarket/internal/metrics"
)

// Run starts the HTTP server and blocks until SIGINT/SIGTERM.
func Run(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	d, err := Open(ctx, cfg)
	if err != nil {
		cancel()
		return err
	}
	defer d.Close()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx, d.Pool); err != nil {
			cancel()
			return err
		}
		log.Println("Schema up to date")
	}
	cancel()

	if cfg.Metrics.Enabled {
		metrics.Register()
	}

	app := NewServer(cfg, d)

	// Start Server
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Listening on :%s", cfg.Server.Port)
		errCh <- app.Listen(":" + cfg.Server.Port)
	}()

	// Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-c:
	}

	log.Println("Gracefully shutting down...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Server shutdown complete")
	return nil
}
