package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/moviemagic/internal/config"
	"github.com/s21platform/moviemagic/internal/pkg/jwt"
	"github.com/s21platform/moviemagic/internal/pkg/validator"
	"github.com/s21platform/moviemagic/internal/repository/memory"
	"github.com/s21platform/moviemagic/internal/rest"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg := config.MustLoad()
	newLogger := func() logger_lib.LoggerInterface {
		return logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)
	}
	logger := newLogger()

	dbRepo := memory.New()
	catalog := memory.NewCatalog()

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.MockAPI.JWTSecret, cfg.MockAPI.TokenTTL)

	handler := rest.New(dbRepo, catalog, vldtr, jwtGenerator)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.MockAPI.Port),
		Handler:           rest.NewRouter(handler, newLogger, cfg.MockAPI.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info(fmt.Sprintf("mock API listening on %s", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down HTTP server: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
