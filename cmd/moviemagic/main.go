package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/moviemagic/internal/chat"
	"github.com/s21platform/moviemagic/internal/client/api"
	"github.com/s21platform/moviemagic/internal/config"
	"github.com/s21platform/moviemagic/internal/model"
	"github.com/s21platform/moviemagic/internal/pkg/jwt"
	"github.com/s21platform/moviemagic/internal/pkg/validator"
	"github.com/s21platform/moviemagic/internal/query"
	"github.com/s21platform/moviemagic/internal/repository/localstore"
	"github.com/s21platform/moviemagic/internal/service"
	"github.com/s21platform/moviemagic/internal/session"
	"github.com/s21platform/moviemagic/internal/tui"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	storage := localstore.New(cfg)
	defer storage.Close()

	apiClient := api.New(cfg, logger)
	defer apiClient.Close()

	cache := query.New(query.Options{
		StaleTime: cfg.Query.StaleTime,
		Retry:     cfg.Query.Retry,
		RetryIf:   api.IsRetryable,
	})
	vldtr := validator.New()

	authStore := session.New(apiClient, storage, vldtr, jwt.NewInspector(), logger)
	defer authStore.Close()

	router := tui.NewRouter(tui.RouteChat)
	apiClient.SetInterceptor(api.NewSessionGuard(authStore, router, logger))

	system := service.NewSystem(apiClient, cache)
	if root, err := system.Root(ctx); err != nil {
		logger.Warn(fmt.Sprintf("API at %s is unreachable: %v", cfg.API.BaseURL, err))
	} else {
		logger.Info(fmt.Sprintf("connected to %s %s", root.Message, root.Version))
	}

	if err := authStore.Init(ctx); err != nil {
		logger.Error(fmt.Sprintf("failed to restore session: %v", err))
	}

	conversations := service.NewConversations(apiClient, cache)
	movies := service.NewMovies(apiClient, cache, vldtr)
	watchlist := service.NewWatchlist(apiClient, cache, authStore, vldtr)

	workspace := chat.NewWorkspace(apiClient, conversations, logger, authStore.UserID())

	authStore.Subscribe(func(status session.Status, user *model.User) {
		switch status {
		case session.StatusAuthenticated:
			workspace.SetUser(user.Email)
		case session.StatusUnauthenticated:
			workspace.SetUser(model.GuestUserID)
			watchlist.Clear()
		}
	})

	app := tui.NewApp(ctx, router, tui.Deps{
		Auth:      authStore,
		Workspace: workspace,
		Session:   workspace.Session(),
		Movies:    movies,
		Watchlist: watchlist,
	})

	logFile, err := tea.LogToFile(cfg.Logger.File, cfg.Service.Name)
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}
	defer logFile.Close()

	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	router.Attach(program.Send)

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error(fmt.Sprintf("terminal UI error: %v", err))
		fmt.Fprintf(os.Stderr, "terminal UI error: %v\n", err)
		os.Exit(1)
	}
}
