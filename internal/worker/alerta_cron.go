package worker

// alerta_cron.go
// Background goroutine that re-enqueues alertas whose inline notification
// never went out (server restart, SMTP outage, open circuit breaker). The
// queue handler deduplicates against the notificada flag.

import (
	"context"
	"time"

	"github.com/ingsebastiansierra/tiendaya/internal/infra"
	"github.com/ingsebastiansierra/tiendaya/internal/repository"

	"github.com/rs/zerolog/log"
)

const (
	alertaTickInterval = 60 * time.Second
	alertaBatchSize    = 20
)

// StartAlertaCron launches the re-enqueue loop. It respects the context for
// graceful shutdown and skips ticks while the SMTP breaker is open.
func StartAlertaCron(ctx context.Context, repo repository.AlertaRepository, dispatcher *Dispatcher, cb *infra.CircuitBreaker) {
	go func() {
		ticker := time.NewTicker(alertaTickInterval)
		defer ticker.Stop()

		log.Info().Msg("alerta_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("alerta_cron: shutting down")
				return
			case <-ticker.C:
				processPendientes(ctx, repo, dispatcher, cb)
			}
		}
	}()
}

func processPendientes(ctx context.Context, repo repository.AlertaRepository, dispatcher *Dispatcher, cb *infra.CircuitBreaker) {
	if cb.State() == infra.CBOpen {
		log.Debug().Msg("alerta_cron: circuit breaker is open, skipping tick")
		return
	}

	alertas, err := repo.ListNoNotificadas(ctx, alertaBatchSize)
	if err != nil {
		log.Error().Err(err).Msg("alerta_cron: failed to query pending alertas")
		return
	}
	if len(alertas) == 0 {
		return
	}

	log.Info().Int("count", len(alertas)).Msg("alerta_cron: re-enqueueing pending alertas")
	for _, a := range alertas {
		if err := dispatcher.EnqueueAlerta(ctx, a.ID); err != nil {
			log.Error().Err(err).Str("alerta_id", a.ID.String()).Msg("alerta_cron: enqueue failed")
		}
	}
}
