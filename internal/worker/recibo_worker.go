package worker

// recibo_worker.go
// Generates the PDF receipt of a venta and mails it to the address the
// register requested.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ingsebastiansierra/tiendaya/internal/infra"
	"github.com/ingsebastiansierra/tiendaya/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ReciboWorker struct {
	ventaRepo   repository.VentaRepository
	tiendaRepo  repository.TiendaRepository
	mailer      *infra.Mailer
	cb          *infra.CircuitBreaker
	storagePath string
}

func NewReciboWorker(
	ventaRepo repository.VentaRepository,
	tiendaRepo repository.TiendaRepository,
	mailer *infra.Mailer,
	cb *infra.CircuitBreaker,
	storagePath string,
) *ReciboWorker {
	return &ReciboWorker{
		ventaRepo:   ventaRepo,
		tiendaRepo:  tiendaRepo,
		mailer:      mailer,
		cb:          cb,
		storagePath: storagePath,
	}
}

func (w *ReciboWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ReciboJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("recibo_worker: invalid payload")
		return nil
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("recibo_worker: empty to_email, skipping")
		return nil
	}
	id, err := uuid.Parse(payload.VentaID)
	if err != nil {
		log.Error().Str("venta_id", payload.VentaID).Msg("recibo_worker: invalid venta id")
		return nil
	}

	venta, err := w.ventaRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("recibo_worker: load venta: %w", err)
	}
	tienda, err := w.tiendaRepo.FindByID(ctx, venta.TiendaID)
	if err != nil {
		return fmt.Errorf("recibo_worker: load tienda: %w", err)
	}

	pdfPath, err := infra.GenerateReciboPDF(venta, tienda.Nombre, w.storagePath)
	if err != nil {
		return fmt.Errorf("recibo_worker: generate pdf: %w", err)
	}

	subject := fmt.Sprintf("Recibo de compra N° %d — %s", venta.NumeroVenta, tienda.Nombre)
	body := fmt.Sprintf("Adjuntamos el recibo de tu compra en %s. Total: $%s.", tienda.Nombre, venta.Total.StringFixed(2))
	sendErr := w.cb.Execute(func() error {
		return w.mailer.Send(payload.ToEmail, subject, body, pdfPath)
	})
	if sendErr != nil {
		return fmt.Errorf("recibo_worker: send mail: %w", sendErr)
	}
	log.Info().Str("venta_id", id.String()).Str("to", payload.ToEmail).Msg("recibo_worker: recibo sent")
	return nil
}
