package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"mnkgame/internal/bootstrap"
	"mnkgame/internal/server"
)

func newLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return logger.Sugar()
}

func main() {
	cfgPath := flag.String("config", ".env", "path to the env config file")
	flag.Parse()

	log := newLogger()
	defer log.Sync()

	cfg, err := bootstrap.Setup(*cfgPath)
	if err != nil {
		log.Infow("config file not loaded, using defaults", "path", *cfgPath, "error", err)
		cfg = bootstrap.Default()
	}

	srv := server.New(cfg, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Run(ctx)

	httpServer := &http.Server{
		Addr:    cfg.ServerPort,
		Handler: srv.Router(),
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	log.Infow("server listening", "addr", cfg.ServerPort)
	var runErr error
	select {
	case <-sigCtx.Done():
		log.Infow("shutdown signal received")
	case err, ok := <-serverErrCh:
		if ok {
			runErr = err
			log.Errorw("server error", "error", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Errorw("graceful shutdown failed", "error", err)
		if closeErr := httpServer.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Errorw("forced close failed", "error", closeErr)
		}
	}

	cancel()
	if runErr != nil {
		log.Errorw("exiting after server error", "error", runErr)
	}
}
