package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ingsebastiansierra/tiendaya/internal/dto"
	"github.com/ingsebastiansierra/tiendaya/internal/model"
	"github.com/ingsebastiansierra/tiendaya/internal/repository"
	"github.com/ingsebastiansierra/tiendaya/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrSinSesionAbierta  = errors.New("no hay una sesión de caja abierta")
	ErrStockInsuficiente = errors.New("stock insuficiente")
)

type VentaService interface {
	RegistrarVenta(ctx context.Context, tiendaID, usuarioID uuid.UUID, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	GetVenta(ctx context.Context, tiendaID, id uuid.UUID) (*dto.VentaResponse, error)
	ListVentas(ctx context.Context, tiendaID uuid.UUID, filter dto.VentaFilter) (*dto.VentaListResponse, error)
}

type ventaService struct {
	repo         repository.VentaRepository
	cajaRepo     repository.CajaRepository
	productoRepo repository.ProductoRepository
	metodoRepo   repository.MetodoPagoRepository
	alertaRepo   repository.AlertaRepository
	dispatcher   *worker.Dispatcher
}

func NewVentaService(
	repo repository.VentaRepository,
	cajaRepo repository.CajaRepository,
	productoRepo repository.ProductoRepository,
	metodoRepo repository.MetodoPagoRepository,
	alertaRepo repository.AlertaRepository,
	dispatcher *worker.Dispatcher,
) VentaService {
	return &ventaService{
		repo:         repo,
		cajaRepo:     cajaRepo,
		productoRepo: productoRepo,
		metodoRepo:   metodoRepo,
		alertaRepo:   alertaRepo,
		dispatcher:   dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── RegistrarVenta ────────────────────────────────────────────────────────────
// One transaction covers the whole sale:
//   1. Require an open sesión de caja
//   2. Resolve products, snapshot prices, verify stock (full quantity or reject)
//   3. BEGIN TX: consecutive numero_venta, venta + detalles, stock decrements,
//      low-stock alertas for thresholds crossed by this sale
//   4. COMMIT, then (best-effort) enqueue alerta notification jobs

func (s *ventaService) RegistrarVenta(ctx context.Context, tiendaID, usuarioID uuid.UUID, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	if len(req.Items) == 0 {
		return nil, errors.New("la venta requiere al menos un producto")
	}

	sesion, err := s.cajaRepo.FindSesionAbierta(ctx, tiendaID)
	if err != nil {
		return nil, ErrSinSesionAbierta
	}

	metodoID, err := uuid.Parse(req.MetodoPagoID)
	if err != nil {
		return nil, fmt.Errorf("metodo_pago_id inválido: %w", err)
	}
	metodo, err := s.metodoRepo.FindByID(ctx, metodoID)
	if err != nil {
		return nil, errors.New("método de pago no encontrado")
	}
	if metodo.RequiereReferencia && (req.Referencia == nil || *req.Referencia == "") {
		return nil, fmt.Errorf("el método %s requiere referencia de pago", metodo.Nombre)
	}

	// Resolve products and snapshot prices outside the TX; stock is
	// re-checked inside via the conditional decrement.
	type resolvedItem struct {
		producto *model.Producto
		cantidad int
		subtotal decimal.Decimal
	}

	var resolved []resolvedItem
	subtotal := decimal.Zero
	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProductoID)
		if err != nil {
			return nil, fmt.Errorf("producto_id inválido: %w", err)
		}
		p, err := s.productoRepo.FindByID(ctx, pid)
		if err != nil {
			return nil, fmt.Errorf("producto %s no encontrado", item.ProductoID)
		}
		if !p.Activo {
			return nil, fmt.Errorf("producto %s está inactivo y no puede venderse", p.Nombre)
		}
		if p.StockActual < item.Cantidad {
			return nil, fmt.Errorf("%w: %s tiene %d unidades, se pidieron %d",
				ErrStockInsuficiente, p.Nombre, p.StockActual, item.Cantidad)
		}
		lineSubtotal := p.PrecioVenta.Mul(decimal.NewFromInt(int64(item.Cantidad)))
		subtotal = subtotal.Add(lineSubtotal)
		resolved = append(resolved, resolvedItem{producto: p, cantidad: item.Cantidad, subtotal: lineSubtotal})
	}

	if req.Descuento.IsNegative() || req.Descuento.GreaterThan(subtotal) {
		return nil, errors.New("descuento inválido")
	}
	total := subtotal.Sub(req.Descuento)

	var venta model.Venta
	var alertas []*model.Alerta
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		num, err := s.repo.NextNumeroVenta(ctx, tx, tiendaID)
		if err != nil {
			return err
		}

		venta = model.Venta{
			TiendaID:     tiendaID,
			SesionID:     sesion.ID,
			UsuarioID:    usuarioID,
			NumeroVenta:  num,
			Subtotal:     subtotal,
			Descuento:    req.Descuento,
			Total:        total,
			MetodoPagoID: metodo.ID,
			Referencia:   req.Referencia,
			Notas:        req.Notas,
		}
		for _, r := range resolved {
			venta.Detalles = append(venta.Detalles, model.VentaDetalle{
				ProductoID:     r.producto.ID,
				Cantidad:       r.cantidad,
				PrecioUnitario: r.producto.PrecioVenta,
				Subtotal:       r.subtotal,
			})
		}
		if err := s.repo.Create(ctx, tx, &venta); err != nil {
			return err
		}

		for _, r := range resolved {
			if err := s.productoRepo.UpdateStockTx(tx, r.producto.ID, -r.cantidad); err != nil {
				return fmt.Errorf("error descontando stock de %s: %w", r.producto.Nombre, err)
			}

			nuevoStock := r.producto.StockActual - r.cantidad
			if nuevoStock > r.producto.StockMinimo {
				continue
			}
			tipo := model.AlertaStockBajo
			prioridad := model.PrioridadAlta
			if nuevoStock <= 0 {
				tipo = model.AlertaStockAgotado
				prioridad = model.PrioridadCritica
			}
			existe, err := s.alertaRepo.ExisteActiva(tx, tiendaID, r.producto.ID, tipo)
			if err != nil {
				return err
			}
			if existe {
				continue
			}
			pid := r.producto.ID
			alerta := &model.Alerta{
				TiendaID:   tiendaID,
				Tipo:       tipo,
				Titulo:     fmt.Sprintf("Stock bajo: %s", r.producto.Nombre),
				Mensaje:    fmt.Sprintf("Quedan %d unidades de %s (mínimo %d)", nuevoStock, r.producto.Nombre, r.producto.StockMinimo),
				ProductoID: &pid,
				Prioridad:  prioridad,
			}
			if err := s.alertaRepo.CreateTx(tx, alerta); err != nil {
				return err
			}
			alertas = append(alertas, alerta)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Notification delivery is async; the cron re-enqueues anything missed.
	if s.dispatcher != nil {
		for _, a := range alertas {
			_ = s.dispatcher.EnqueueAlerta(ctx, a.ID)
		}
	}

	resp := ventaToResponse(&venta)
	resp.MetodoPago = metodo.Nombre
	for i, r := range resolved {
		resp.Detalles[i].Producto = r.producto.Nombre
	}
	return resp, nil
}

func (s *ventaService) GetVenta(ctx context.Context, tiendaID, id uuid.UUID) (*dto.VentaResponse, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil || venta.TiendaID != tiendaID {
		return nil, errors.New("venta no encontrada")
	}
	return ventaToResponse(venta), nil
}

func (s *ventaService) ListVentas(ctx context.Context, tiendaID uuid.UUID, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	ventas, total, err := s.repo.List(ctx, tiendaID, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		data = append(data, *ventaToResponse(&v))
	}
	return &dto.VentaListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	detalles := make([]dto.DetalleVentaResponse, 0, len(v.Detalles))
	for _, d := range v.Detalles {
		nombre := ""
		if d.Producto != nil {
			nombre = d.Producto.Nombre
		}
		detalles = append(detalles, dto.DetalleVentaResponse{
			Producto:       nombre,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		})
	}
	metodoNombre := ""
	if v.MetodoPago != nil {
		metodoNombre = v.MetodoPago.Nombre
	}
	return &dto.VentaResponse{
		ID:          v.ID.String(),
		NumeroVenta: v.NumeroVenta,
		SesionID:    v.SesionID.String(),
		Detalles:    detalles,
		Subtotal:    v.Subtotal,
		Descuento:   v.Descuento,
		Total:       v.Total,
		MetodoPago:  metodoNombre,
		Referencia:  v.Referencia,
		CreatedAt:   v.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
