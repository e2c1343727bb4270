package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"home_security/internal/config"
	"home_security/internal/feeds"
	"home_security/internal/handlers"
	"home_security/internal/logger"
	"home_security/internal/repository"
	"home_security/internal/repository/db"
	"home_security/internal/server"
	"home_security/internal/service"
)

const defaultRecorderTick = 30 * time.Second

func main() {
	// init logger with a provisional level; config may refine it
	log := logger.Get(logger.InfoLevel)

	// load configs/config.yml + environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	// feed registry and gateway client; a missing logical sensor fails here,
	// not per request
	registry, err := feeds.NewRegistry(cfg)
	if err != nil {
		log.Fatalw("failed to build feed registry", "err", err)
	}
	client := feeds.NewClient(cfg, registry)

	// optional local intrusion log
	repos, closeDB, err := openIntrusionLog(cfg, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer closeDB()

	// wire dependencies
	services := service.NewService(client, repos, log)
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start motion recorder (populates the degraded-mode intrusion log)
	go services.Recorder.Run(ctx, recorderTick(cfg, log))

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

// openIntrusionLog opens the sqlite event log when a path is configured.
// Without one the repository layer stays nil and the fallback is disabled.
func openIntrusionLog(cfg *config.Config, log *logger.Logger) (*repository.Repository, func(), error) {
	if cfg.DBPath == "" {
		log.Infow("db.path not set; intrusion log fallback disabled")
		return nil, func() {}, nil
	}
	sqlDB, err := db.InitDB(cfg.DBPath)
	if err != nil {
		return nil, func() {}, err
	}
	closeDB := func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}
	return repository.NewRepository(sqlDB), closeDB, nil
}

// recorderTick parses the configured polling interval, falling back to the default.
func recorderTick(cfg *config.Config, log *logger.Logger) time.Duration {
	tick, err := time.ParseDuration(cfg.RecorderInterval)
	if err != nil || tick <= 0 {
		log.Infow("invalid recorder.interval; using default",
			"value", cfg.RecorderInterval, "default", defaultRecorderTick)
		return defaultRecorderTick
	}
	return tick
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
