package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/hero-registry/config"
	"github.com/Dosada05/hero-registry/db"
	"github.com/Dosada05/hero-registry/handlers"
	"github.com/Dosada05/hero-registry/repositories"
	api "github.com/Dosada05/hero-registry/routes"
	"github.com/Dosada05/hero-registry/services"
	"github.com/go-chi/chi/v5"
)

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	// Схема создаётся на старте, миграций нет
	if err := db.EnsureSchema(context.Background(), dbConn); err != nil {
		logger.Error("failed to ensure database schema", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database schema ensured")

	// Инициализация репозиториев
	heroRepo := repositories.NewHeroRepository(dbConn)
	teamRepo := repositories.NewTeamRepository(dbConn)
	logger.Info("repositories initialized")

	// Инициализация сервисов
	heroService := services.NewHeroService(dbConn, heroRepo, teamRepo)
	teamService := services.NewTeamService(dbConn, teamRepo, heroRepo)
	logger.Info("services initialized")

	// Инициализация обработчиков HTTP
	heroHandler := handlers.NewHeroHandler(heroService)
	teamHandler := handlers.NewTeamHandler(teamService)
	healthHandler := handlers.NewHealthHandler(dbConn)
	logger.Info("HTTP handlers initialized")

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(router, heroHandler, teamHandler, healthHandler)
	logger.Info("routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		} else {
			logger.Info("server stopped gracefully")
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}
