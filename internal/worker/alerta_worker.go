package worker

// alerta_worker.go
// Delivers stored stock alertas by email to the tienda's contact address.
// SMTP calls go through the circuit breaker so a downed relay fast-fails
// instead of blocking the pool.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ingsebastiansierra/tiendaya/internal/infra"
	"github.com/ingsebastiansierra/tiendaya/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type AlertaWorker struct {
	alertaRepo repository.AlertaRepository
	tiendaRepo repository.TiendaRepository
	mailer     *infra.Mailer
	cb         *infra.CircuitBreaker
}

func NewAlertaWorker(
	alertaRepo repository.AlertaRepository,
	tiendaRepo repository.TiendaRepository,
	mailer *infra.Mailer,
	cb *infra.CircuitBreaker,
) *AlertaWorker {
	return &AlertaWorker{alertaRepo: alertaRepo, tiendaRepo: tiendaRepo, mailer: mailer, cb: cb}
}

// Process mails one alerta and marks it notificada. Jobs for alertas already
// delivered (the cron may race with the inline enqueue) are dropped silently.
func (w *AlertaWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload AlertaJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("alerta_worker: invalid payload")
		return nil // malformed payloads never succeed, don't retry
	}
	id, err := uuid.Parse(payload.AlertaID)
	if err != nil {
		log.Error().Str("alerta_id", payload.AlertaID).Msg("alerta_worker: invalid alerta id")
		return nil
	}

	alerta, err := w.alertaRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("alerta_worker: load alerta: %w", err)
	}
	if alerta.Notificada {
		return nil
	}

	tienda, err := w.tiendaRepo.FindByID(ctx, alerta.TiendaID)
	if err != nil {
		return fmt.Errorf("alerta_worker: load tienda: %w", err)
	}
	if tienda.Email == nil || *tienda.Email == "" {
		// No address to notify — mark delivered so the cron stops retrying.
		log.Warn().Str("tienda", tienda.Nombre).Msg("alerta_worker: tienda has no email, skipping")
		return w.alertaRepo.MarcarNotificada(ctx, id)
	}

	subject := fmt.Sprintf("[%s] %s", tienda.Nombre, alerta.Titulo)
	sendErr := w.cb.Execute(func() error {
		return w.mailer.Send(*tienda.Email, subject, alerta.Mensaje, "")
	})
	if sendErr != nil {
		return fmt.Errorf("alerta_worker: send mail: %w", sendErr)
	}

	if err := w.alertaRepo.MarcarNotificada(ctx, id); err != nil {
		return fmt.Errorf("alerta_worker: mark notificada: %w", err)
	}
	log.Info().Str("alerta_id", id.String()).Str("to", *tienda.Email).Msg("alerta_worker: alerta delivered")
	return nil
}
