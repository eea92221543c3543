package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Moshe1988/CouponManagementSystem/internal/api"
	"github.com/Moshe1988/CouponManagementSystem/internal/config"
	"github.com/Moshe1988/CouponManagementSystem/internal/repository/postgres"
	"github.com/Moshe1988/CouponManagementSystem/internal/service"
	"github.com/Moshe1988/CouponManagementSystem/internal/session"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	repos := postgres.NewRepositories(db)
	registry := session.NewRegistry()
	services := service.NewServices(repos, registry, cfg)

	// Background sweepers, stopped via context on shutdown.
	sweeperCtx, stopSweepers := context.WithCancel(context.Background())
	defer stopSweepers()

	sessionSweeper := session.NewSweeper(registry, cfg.SessionIdleTimeout, cfg.SessionSweepInterval, log)
	go sessionSweeper.Run(sweeperCtx)

	couponSweeper := service.NewCouponSweeper(repos.Coupon, cfg.CouponSweepInterval, log)
	go couponSweeper.Run(sweeperCtx)

	router := api.NewRouter(services)

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	stopSweepers()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
