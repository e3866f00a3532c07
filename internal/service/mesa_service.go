package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ingsebastiansierra/tiendaya/internal/dto"
	"github.com/ingsebastiansierra/tiendaya/internal/model"
	"github.com/ingsebastiansierra/tiendaya/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrMesaCerrada     = errors.New("la mesa está cerrada")
	ErrCuentaPendiente = errors.New("la mesa tiene cuentas pendientes")
)

// MesaService maintains the open-tab ledger. Invariant after every
// operation: mesa.TotalMesa == mesa.TotalPagado + mesa.TotalPendiente.
type MesaService interface {
	AbrirMesa(ctx context.Context, tiendaID uuid.UUID, req dto.AbrirMesaRequest) (*dto.MesaResponse, error)
	GetMesa(ctx context.Context, tiendaID, id uuid.UUID) (*dto.MesaResponse, error)
	ListMesas(ctx context.Context, tiendaID uuid.UUID, estado string) (*dto.MesaListResponse, error)
	AgregarCliente(ctx context.Context, tiendaID, mesaID uuid.UUID, req dto.AgregarClienteRequest) (*dto.MesaResponse, error)
	AgregarProducto(ctx context.Context, tiendaID, clienteID uuid.UUID, req dto.AgregarProductoMesaRequest) (*dto.MesaResponse, error)
	CobrarCliente(ctx context.Context, tiendaID, clienteID uuid.UUID, req dto.CobrarClienteRequest) (*dto.MesaResponse, error)
	ReabrirCliente(ctx context.Context, tiendaID, clienteID uuid.UUID) (*dto.MesaResponse, error)
	CerrarMesa(ctx context.Context, tiendaID, id uuid.UUID) (*dto.MesaResponse, error)
	EliminarMesa(ctx context.Context, tiendaID, id uuid.UUID) error
}

type mesaService struct {
	repo         repository.MesaRepository
	productoRepo repository.ProductoRepository
	metodoRepo   repository.MetodoPagoRepository
	cajaRepo     repository.CajaRepository
}

func NewMesaService(
	repo repository.MesaRepository,
	productoRepo repository.ProductoRepository,
	metodoRepo repository.MetodoPagoRepository,
	cajaRepo repository.CajaRepository,
) MesaService {
	return &mesaService{
		repo:         repo,
		productoRepo: productoRepo,
		metodoRepo:   metodoRepo,
		cajaRepo:     cajaRepo,
	}
}

func (s *mesaService) AbrirMesa(ctx context.Context, tiendaID uuid.UUID, req dto.AbrirMesaRequest) (*dto.MesaResponse, error) {
	if req.NumeroMesa == "" {
		return nil, errors.New("la mesa requiere un número o nombre")
	}

	mesa := model.Mesa{
		TiendaID:       tiendaID,
		NumeroMesa:     req.NumeroMesa,
		Estado:         model.MesaAbierta,
		TotalMesa:      decimal.Zero,
		TotalPagado:    decimal.Zero,
		TotalPendiente: decimal.Zero,
	}
	// Attach the open register session when there is one; mesas can also
	// run outside caja hours.
	if sesion, err := s.cajaRepo.FindSesionAbierta(ctx, tiendaID); err == nil {
		mesa.SesionID = &sesion.ID
	}
	if err := s.repo.CreateMesa(ctx, &mesa); err != nil {
		return nil, err
	}
	return mesaToResponse(&mesa), nil
}

// findMesa loads a mesa and hides it when it belongs to another tienda.
func (s *mesaService) findMesa(ctx context.Context, tiendaID, id uuid.UUID) (*model.Mesa, error) {
	mesa, err := s.repo.FindMesaByID(ctx, id)
	if err != nil || mesa.TiendaID != tiendaID {
		return nil, errors.New("mesa no encontrada")
	}
	return mesa, nil
}

// findCliente resolves a sub-account together with its mesa, rejecting ids
// that reach across the tienda boundary.
func (s *mesaService) findCliente(ctx context.Context, tiendaID, clienteID uuid.UUID) (*model.MesaCliente, *model.Mesa, error) {
	cliente, err := s.repo.FindClienteByID(ctx, clienteID)
	if err != nil {
		return nil, nil, errors.New("cliente de mesa no encontrado")
	}
	mesa, err := s.findMesa(ctx, tiendaID, cliente.MesaID)
	if err != nil {
		return nil, nil, errors.New("cliente de mesa no encontrado")
	}
	return cliente, mesa, nil
}

func (s *mesaService) GetMesa(ctx context.Context, tiendaID, id uuid.UUID) (*dto.MesaResponse, error) {
	mesa, err := s.findMesa(ctx, tiendaID, id)
	if err != nil {
		return nil, err
	}
	return mesaToResponse(mesa), nil
}

func (s *mesaService) ListMesas(ctx context.Context, tiendaID uuid.UUID, estado string) (*dto.MesaListResponse, error) {
	mesas, err := s.repo.ListMesas(ctx, tiendaID, estado)
	if err != nil {
		return nil, err
	}
	data := make([]dto.MesaResponse, 0, len(mesas))
	for _, m := range mesas {
		data = append(data, *mesaToResponse(&m))
	}
	return &dto.MesaListResponse{Data: data, Total: len(data)}, nil
}

func (s *mesaService) AgregarCliente(ctx context.Context, tiendaID, mesaID uuid.UUID, req dto.AgregarClienteRequest) (*dto.MesaResponse, error) {
	mesa, err := s.findMesa(ctx, tiendaID, mesaID)
	if err != nil {
		return nil, err
	}
	if mesa.Estado != model.MesaAbierta {
		return nil, ErrMesaCerrada
	}

	nombre := ""
	if req.Nombre != nil {
		nombre = *req.Nombre
	}
	if nombre == "" {
		nombre = fmt.Sprintf("Cliente %d", len(mesa.Clientes)+1)
	}

	cliente := model.MesaCliente{
		MesaID:        mesa.ID,
		NombreCliente: nombre,
		Estado:        model.CuentaPendiente,
		Total:         decimal.Zero,
	}
	if err := s.repo.CreateCliente(ctx, &cliente); err != nil {
		return nil, err
	}
	return s.GetMesa(ctx, tiendaID, mesaID)
}

// AgregarProducto appends a line item to a sub-account. The cliente total,
// mesa total and mesa pendiente move together inside one transaction; the
// unit price is copied from the product at add time and never re-read.
func (s *mesaService) AgregarProducto(ctx context.Context, tiendaID, clienteID uuid.UUID, req dto.AgregarProductoMesaRequest) (*dto.MesaResponse, error) {
	if req.Cantidad < 1 {
		return nil, errors.New("la cantidad debe ser mayor a cero")
	}

	cliente, mesa, err := s.findCliente(ctx, tiendaID, clienteID)
	if err != nil {
		return nil, err
	}
	if cliente.Estado != model.CuentaPendiente {
		return nil, errors.New("la cuenta ya está pagada; reábrela para agregar productos")
	}
	if mesa.Estado != model.MesaAbierta {
		return nil, ErrMesaCerrada
	}

	pid, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, fmt.Errorf("producto_id inválido: %w", err)
	}
	producto, err := s.productoRepo.FindByID(ctx, pid)
	if err != nil || producto.TiendaID != tiendaID {
		return nil, errors.New("producto no encontrado")
	}
	if !producto.Activo {
		return nil, fmt.Errorf("producto %s está inactivo", producto.Nombre)
	}

	subtotal := producto.PrecioVenta.Mul(decimal.NewFromInt(int64(req.Cantidad)))

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		detalle := model.MesaClienteDetalle{
			MesaClienteID:  cliente.ID,
			ProductoID:     producto.ID,
			Cantidad:       req.Cantidad,
			PrecioUnitario: producto.PrecioVenta,
			Subtotal:       subtotal,
		}
		if err := s.repo.CreateDetalleTx(tx, &detalle); err != nil {
			return err
		}

		cliente.Total = cliente.Total.Add(subtotal)
		cliente.Productos = nil
		if err := s.repo.UpdateClienteTx(tx, cliente); err != nil {
			return err
		}

		return s.repo.UpdateMesaTotalesTx(tx, mesa.ID,
			mesa.TotalMesa.Add(subtotal),
			mesa.TotalPagado,
			mesa.TotalPendiente.Add(subtotal))
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.GetMesa(ctx, tiendaID, mesa.ID)
}

// CobrarCliente settles one sub-account: the cliente flips to pagado and its
// total moves from pendiente to pagado on the mesa, in one transaction.
func (s *mesaService) CobrarCliente(ctx context.Context, tiendaID, clienteID uuid.UUID, req dto.CobrarClienteRequest) (*dto.MesaResponse, error) {
	cliente, mesa, err := s.findCliente(ctx, tiendaID, clienteID)
	if err != nil {
		return nil, err
	}
	if cliente.Estado != model.CuentaPendiente {
		return nil, errors.New("la cuenta ya está pagada")
	}
	if !cliente.Total.IsPositive() {
		return nil, errors.New("la cuenta no tiene consumo por cobrar")
	}

	tipoPagoID, err := uuid.Parse(req.TipoPagoID)
	if err != nil {
		return nil, fmt.Errorf("tipo_pago_id inválido: %w", err)
	}
	if _, err := s.metodoRepo.FindByID(ctx, tipoPagoID); err != nil {
		return nil, errors.New("método de pago no encontrado")
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		now := time.Now()
		cliente.Estado = model.CuentaPagada
		cliente.TipoPagoID = &tipoPagoID
		cliente.PagadoAt = &now
		cliente.Productos = nil
		if err := s.repo.UpdateClienteTx(tx, cliente); err != nil {
			return err
		}

		return s.repo.UpdateMesaTotalesTx(tx, mesa.ID,
			mesa.TotalMesa,
			mesa.TotalPagado.Add(cliente.Total),
			mesa.TotalPendiente.Sub(cliente.Total))
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.GetMesa(ctx, tiendaID, mesa.ID)
}

// ReabrirCliente wipes a settled sub-account back to an empty pending one.
// The mesa totals are left untouched: money already collected stays recorded
// as collected, so TotalPagado keeps the prior settlement. This asymmetry is
// a product decision, not an accounting error.
func (s *mesaService) ReabrirCliente(ctx context.Context, tiendaID, clienteID uuid.UUID) (*dto.MesaResponse, error) {
	cliente, mesa, err := s.findCliente(ctx, tiendaID, clienteID)
	if err != nil {
		return nil, err
	}
	if cliente.Estado != model.CuentaPagada {
		return nil, errors.New("solo una cuenta pagada puede reabrirse")
	}
	if mesa.Estado != model.MesaAbierta {
		return nil, ErrMesaCerrada
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.DeleteDetallesByClienteTx(tx, cliente.ID); err != nil {
			return err
		}
		cliente.Estado = model.CuentaPendiente
		cliente.Total = decimal.Zero
		cliente.TipoPagoID = nil
		cliente.PagadoAt = nil
		cliente.Productos = nil
		return s.repo.UpdateClienteTx(tx, cliente)
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.GetMesa(ctx, tiendaID, mesa.ID)
}

func (s *mesaService) CerrarMesa(ctx context.Context, tiendaID, id uuid.UUID) (*dto.MesaResponse, error) {
	mesa, err := s.findMesa(ctx, tiendaID, id)
	if err != nil {
		return nil, err
	}
	if mesa.Estado != model.MesaAbierta {
		return nil, ErrMesaCerrada
	}
	if !mesa.TotalPendiente.IsZero() {
		return nil, ErrCuentaPendiente
	}

	now := time.Now()
	if err := s.repo.UpdateMesaEstado(ctx, id, model.MesaCerrada, &now); err != nil {
		return nil, err
	}
	return s.GetMesa(ctx, tiendaID, id)
}

// EliminarMesa cascades innermost-first in a single transaction.
func (s *mesaService) EliminarMesa(ctx context.Context, tiendaID, id uuid.UUID) error {
	if _, err := s.findMesa(ctx, tiendaID, id); err != nil {
		return err
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.DeleteDetallesByMesaTx(tx, id); err != nil {
			return err
		}
		if err := s.repo.DeleteClientesByMesaTx(tx, id); err != nil {
			return err
		}
		return s.repo.DeleteMesaTx(tx, id)
	})
}

func mesaToResponse(m *model.Mesa) *dto.MesaResponse {
	clientes := make([]dto.MesaClienteResponse, 0, len(m.Clientes))
	for _, c := range m.Clientes {
		clientes = append(clientes, *clienteToResponse(&c))
	}
	var closedAt *string
	if m.ClosedAt != nil {
		s := m.ClosedAt.Format("2006-01-02T15:04:05Z")
		closedAt = &s
	}
	return &dto.MesaResponse{
		ID:             m.ID.String(),
		NumeroMesa:     m.NumeroMesa,
		Estado:         m.Estado,
		TotalMesa:      m.TotalMesa,
		TotalPagado:    m.TotalPagado,
		TotalPendiente: m.TotalPendiente,
		Clientes:       clientes,
		CreatedAt:      m.CreatedAt.Format("2006-01-02T15:04:05Z"),
		ClosedAt:       closedAt,
	}
}

func clienteToResponse(c *model.MesaCliente) *dto.MesaClienteResponse {
	productos := make([]dto.DetalleMesaResponse, 0, len(c.Productos))
	for _, d := range c.Productos {
		nombre := ""
		if d.Producto != nil {
			nombre = d.Producto.Nombre
		}
		productos = append(productos, dto.DetalleMesaResponse{
			ID:             d.ID.String(),
			ProductoID:     d.ProductoID.String(),
			Producto:       nombre,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		})
	}
	var tipoPagoID *string
	if c.TipoPagoID != nil {
		s := c.TipoPagoID.String()
		tipoPagoID = &s
	}
	var pagadoAt *string
	if c.PagadoAt != nil {
		s := c.PagadoAt.Format("2006-01-02T15:04:05Z")
		pagadoAt = &s
	}
	return &dto.MesaClienteResponse{
		ID:            c.ID.String(),
		NombreCliente: c.NombreCliente,
		Estado:        c.Estado,
		Total:         c.Total,
		TipoPagoID:    tipoPagoID,
		PagadoAt:      pagadoAt,
		Productos:     productos,
	}
}
