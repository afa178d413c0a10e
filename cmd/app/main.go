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

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/bagdasarian/member-roster/internal/config"
	"github.com/bagdasarian/member-roster/internal/db"
	"github.com/bagdasarian/member-roster/internal/handler"
	"github.com/bagdasarian/member-roster/internal/handler/server"
	"github.com/bagdasarian/member-roster/internal/logger"
	"github.com/bagdasarian/member-roster/internal/repository/postgres"
	"github.com/bagdasarian/member-roster/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.New()

	if err := runMigrations(cfg); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	database := db.MustLoad(cfg)
	log.Info().Msg("connected to database")
	defer database.Close()

	memberRepo := postgres.NewMemberRepository(database)
	teamRepo := postgres.NewTeamRepository(database)

	memberService := service.NewMemberService(memberRepo, teamRepo, log)
	teamService := service.NewTeamService(teamRepo, log)

	h := handler.NewHandler(memberService, teamService)
	srv := server.NewServer(h, cfg.HTTP.Addr, log)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}
}

func runMigrations(cfg *config.Config) error {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.SSLMode,
	)

	m, err := migrate.New("file://"+cfg.Database.MigrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
