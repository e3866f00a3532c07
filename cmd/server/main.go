package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ingsebastiansierra/tiendaya/internal/config"
	"github.com/ingsebastiansierra/tiendaya/internal/infra"
	"github.com/ingsebastiansierra/tiendaya/internal/repository"
	"github.com/ingsebastiansierra/tiendaya/internal/router"
	"github.com/ingsebastiansierra/tiendaya/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Global payment method catalog (Efectivo, Nequi, tarjetas, ...)
	metodoRepo := repository.NewMetodoPagoRepository(db)
	if err := metodoRepo.SeedDefaults(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed metodos de pago")
	}

	// Async workers: alerta mail + PDF receipts, both behind one SMTP
	// circuit breaker so a dead relay cannot burn through retries.
	mailer := infra.NewMailer(cfg)
	smtpCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	dispatcher := worker.NewDispatcher(rdb)

	alertaRepo := repository.NewAlertaRepository(db)
	tiendaRepo := repository.NewTiendaRepository(db)
	ventaRepo := repository.NewVentaRepository(db)

	pool := worker.NewPool(rdb)
	pool.Register("alerta", worker.NewAlertaWorker(alertaRepo, tiendaRepo, mailer, smtpCB).Process)
	pool.Register("recibo", worker.NewReciboWorker(ventaRepo, tiendaRepo, mailer, smtpCB, cfg.ReciboStoragePath).Process)
	pool.Start(ctx, cfg.WorkerPoolSize)

	// Re-enqueues alerta mails that never went out (crash, SMTP outage)
	worker.StartAlertaCron(ctx, alertaRepo, dispatcher, smtpCB)

	r := router.New(cfg, db, rdb)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("tiendaya backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
