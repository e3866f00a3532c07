package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/ingsebastiansierra/tiendaya/internal/dto"
	"github.com/ingsebastiansierra/tiendaya/internal/model"
	"github.com/ingsebastiansierra/tiendaya/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errNotFound = errors.New("not found")

// ── Producto ──────────────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) add(p *model.Producto) *model.Producto {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return p
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	r.add(p)
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, errNotFound
	}
	copia := *p
	return &copia, nil
}

func (r *stubProductoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubProductoRepo) FindByBarcode(_ context.Context, tiendaID uuid.UUID, barcode string) (*model.Producto, error) {
	for _, p := range r.productos {
		if p.TiendaID == tiendaID && p.Activo && p.CodigoBarras != nil && *p.CodigoBarras == barcode {
			return p, nil
		}
	}
	return nil, errNotFound
}

func (r *stubProductoRepo) List(_ context.Context, tiendaID uuid.UUID, activo string) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.TiendaID != tiendaID {
			continue
		}
		switch activo {
		case "all":
		case "false":
			if p.Activo {
				continue
			}
		default:
			if !p.Activo {
				continue
			}
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	if _, ok := r.productos[p.ID]; !ok {
		return errNotFound
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.productos[id]
	if !ok {
		return errNotFound
	}
	p.Activo = false
	return nil
}

func (r *stubProductoRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	p, ok := r.productos[id]
	if !ok {
		return errNotFound
	}
	p.Activo = true
	return nil
}

func (r *stubProductoRepo) UpdateStockTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	p, ok := r.productos[id]
	if !ok {
		return errNotFound
	}
	if p.StockActual+delta < 0 {
		return errors.New("stock insuficiente")
	}
	p.StockActual += delta
	return nil
}

func (r *stubProductoRepo) AjustarStock(_ context.Context, id uuid.UUID, delta int) error {
	return r.UpdateStockTx(nil, id, delta)
}

func (r *stubProductoRepo) CountActivos(_ context.Context, tiendaID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range r.productos {
		if p.TiendaID == tiendaID && p.Activo {
			n++
		}
	}
	return n, nil
}

func (r *stubProductoRepo) CountStockBajo(_ context.Context, tiendaID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range r.productos {
		if p.TiendaID == tiendaID && p.Activo && p.StockActual <= p.StockMinimo {
			n++
		}
	}
	return n, nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── Caja ──────────────────────────────────────────────────────────────────────

type stubCajaRepo struct {
	sesiones map[uuid.UUID]*model.SesionCaja
}

func newStubCajaRepo() *stubCajaRepo {
	return &stubCajaRepo{sesiones: make(map[uuid.UUID]*model.SesionCaja)}
}

func (r *stubCajaRepo) abrir(tiendaID uuid.UUID) *model.SesionCaja {
	s := &model.SesionCaja{
		ID:           uuid.New(),
		TiendaID:     tiendaID,
		UsuarioID:    uuid.New(),
		MontoInicial: decimal.Zero,
		Abierta:      true,
		OpenedAt:     time.Now(),
	}
	r.sesiones[s.ID] = s
	return s
}

func (r *stubCajaRepo) CreateSesion(_ context.Context, s *model.SesionCaja) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.OpenedAt = time.Now()
	r.sesiones[s.ID] = s
	return nil
}

func (r *stubCajaRepo) FindSesionByID(_ context.Context, id uuid.UUID) (*model.SesionCaja, error) {
	s, ok := r.sesiones[id]
	if !ok {
		return nil, errNotFound
	}
	return s, nil
}

func (r *stubCajaRepo) FindSesionAbierta(_ context.Context, tiendaID uuid.UUID) (*model.SesionCaja, error) {
	for _, s := range r.sesiones {
		if s.TiendaID == tiendaID && s.Abierta {
			return s, nil
		}
	}
	return nil, errNotFound
}

func (r *stubCajaRepo) CerrarSesion(_ context.Context, id uuid.UUID, closedAt time.Time) error {
	s, ok := r.sesiones[id]
	if !ok {
		return errNotFound
	}
	s.Abierta = false
	s.ClosedAt = &closedAt
	return nil
}

func (r *stubCajaRepo) ListSesiones(_ context.Context, tiendaID uuid.UUID, page, limit int) ([]model.SesionCaja, int64, error) {
	var out []model.SesionCaja
	for _, s := range r.sesiones {
		if s.TiendaID == tiendaID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OpenedAt.After(out[j].OpenedAt) })
	return out, int64(len(out)), nil
}

var _ repository.CajaRepository = (*stubCajaRepo)(nil)

// ── Venta ─────────────────────────────────────────────────────────────────────

type stubVentaRepo struct {
	ventas  map[uuid.UUID]*model.Venta
	numeros map[uuid.UUID]int
	sumDia  map[string]decimal.Decimal
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{
		ventas:  make(map[uuid.UUID]*model.Venta),
		numeros: make(map[uuid.UUID]int),
		sumDia:  make(map[string]decimal.Decimal),
	}
}

func (r *stubVentaRepo) Create(_ context.Context, _ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	v.CreatedAt = time.Now()
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, errNotFound
	}
	return v, nil
}

func (r *stubVentaRepo) NextNumeroVenta(_ context.Context, _ *gorm.DB, tiendaID uuid.UUID) (int, error) {
	r.numeros[tiendaID]++
	return r.numeros[tiendaID], nil
}

func (r *stubVentaRepo) ListBySesion(_ context.Context, sesionID uuid.UUID) ([]model.Venta, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if v.SesionID == sesionID {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NumeroVenta < out[j].NumeroVenta })
	return out, nil
}

func (r *stubVentaRepo) List(_ context.Context, tiendaID uuid.UUID, _ dto.VentaFilter) ([]model.Venta, int64, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if v.TiendaID == tiendaID {
			out = append(out, *v)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubVentaRepo) SumDia(_ context.Context, tiendaID uuid.UUID, dia time.Time) (decimal.Decimal, error) {
	if sum, ok := r.sumDia[tiendaID.String()+dia.Format("2006-01-02")]; ok {
		return sum, nil
	}
	return decimal.Zero, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// ── Metodo de pago ────────────────────────────────────────────────────────────

type stubMetodoRepo struct {
	metodos map[uuid.UUID]*model.MetodoPago
}

func newStubMetodoRepo() *stubMetodoRepo {
	return &stubMetodoRepo{metodos: make(map[uuid.UUID]*model.MetodoPago)}
}

func (r *stubMetodoRepo) add(nombre string, requiereRef bool) *model.MetodoPago {
	m := &model.MetodoPago{ID: uuid.New(), Nombre: nombre, RequiereReferencia: requiereRef, Activo: true}
	r.metodos[m.ID] = m
	return m
}

func (r *stubMetodoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.MetodoPago, error) {
	m, ok := r.metodos[id]
	if !ok {
		return nil, errNotFound
	}
	return m, nil
}

func (r *stubMetodoRepo) List(_ context.Context, _ uuid.UUID) ([]model.MetodoPago, error) {
	var out []model.MetodoPago
	for _, m := range r.metodos {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Orden < out[j].Orden })
	return out, nil
}

func (r *stubMetodoRepo) SeedDefaults(_ context.Context) error { return nil }

var _ repository.MetodoPagoRepository = (*stubMetodoRepo)(nil)

// ── Alerta ────────────────────────────────────────────────────────────────────

type stubAlertaRepo struct {
	alertas map[uuid.UUID]*model.Alerta
}

func newStubAlertaRepo() *stubAlertaRepo {
	return &stubAlertaRepo{alertas: make(map[uuid.UUID]*model.Alerta)}
}

func (r *stubAlertaRepo) CreateTx(_ *gorm.DB, a *model.Alerta) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = time.Now()
	r.alertas[a.ID] = a
	return nil
}

func (r *stubAlertaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Alerta, error) {
	a, ok := r.alertas[id]
	if !ok {
		return nil, errNotFound
	}
	return a, nil
}

func (r *stubAlertaRepo) List(_ context.Context, tiendaID uuid.UUID, soloNoLeidas bool) ([]model.Alerta, error) {
	var out []model.Alerta
	for _, a := range r.alertas {
		if a.TiendaID != tiendaID {
			continue
		}
		if soloNoLeidas && a.Leida {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAlertaRepo) ExisteActiva(_ *gorm.DB, tiendaID, productoID uuid.UUID, tipo string) (bool, error) {
	for _, a := range r.alertas {
		if a.TiendaID == tiendaID && a.ProductoID != nil && *a.ProductoID == productoID &&
			a.Tipo == tipo && !a.Leida {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubAlertaRepo) MarcarLeida(_ context.Context, id uuid.UUID) error {
	a, ok := r.alertas[id]
	if !ok {
		return errNotFound
	}
	a.Leida = true
	return nil
}

func (r *stubAlertaRepo) MarcarNotificada(_ context.Context, id uuid.UUID) error {
	a, ok := r.alertas[id]
	if !ok {
		return errNotFound
	}
	a.Notificada = true
	return nil
}

func (r *stubAlertaRepo) ListNoNotificadas(_ context.Context, limit int) ([]model.Alerta, error) {
	var out []model.Alerta
	for _, a := range r.alertas {
		if !a.Notificada {
			out = append(out, *a)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

var _ repository.AlertaRepository = (*stubAlertaRepo)(nil)

// ── Mesa ──────────────────────────────────────────────────────────────────────

// stubMesaRepo keeps mesas, clientes and detalles in separate maps and
// reassembles the tree on read, mirroring the Preload chain.
type stubMesaRepo struct {
	mesas    map[uuid.UUID]*model.Mesa
	clientes map[uuid.UUID]*model.MesaCliente
	orden    []uuid.UUID // cliente insertion order
	detalles map[uuid.UUID][]model.MesaClienteDetalle
}

func newStubMesaRepo() *stubMesaRepo {
	return &stubMesaRepo{
		mesas:    make(map[uuid.UUID]*model.Mesa),
		clientes: make(map[uuid.UUID]*model.MesaCliente),
		detalles: make(map[uuid.UUID][]model.MesaClienteDetalle),
	}
}

func (r *stubMesaRepo) CreateMesa(_ context.Context, m *model.Mesa) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	r.mesas[m.ID] = m
	return nil
}

func (r *stubMesaRepo) FindMesaByID(_ context.Context, id uuid.UUID) (*model.Mesa, error) {
	m, ok := r.mesas[id]
	if !ok {
		return nil, errNotFound
	}
	out := *m
	out.Clientes = nil
	for _, cid := range r.orden {
		c := r.clientes[cid]
		if c.MesaID != id {
			continue
		}
		cc := *c
		cc.Productos = append([]model.MesaClienteDetalle(nil), r.detalles[cid]...)
		out.Clientes = append(out.Clientes, cc)
	}
	return &out, nil
}

func (r *stubMesaRepo) ListMesas(_ context.Context, tiendaID uuid.UUID, estado string) ([]model.Mesa, error) {
	var out []model.Mesa
	for _, m := range r.mesas {
		if m.TiendaID != tiendaID {
			continue
		}
		if estado != "" && estado != "all" && m.Estado != estado {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMesaRepo) UpdateMesaEstado(_ context.Context, id uuid.UUID, estado string, closedAt *time.Time) error {
	m, ok := r.mesas[id]
	if !ok {
		return errNotFound
	}
	m.Estado = estado
	m.ClosedAt = closedAt
	return nil
}

func (r *stubMesaRepo) UpdateMesaTotalesTx(_ *gorm.DB, id uuid.UUID, totalMesa, totalPagado, totalPendiente decimal.Decimal) error {
	m, ok := r.mesas[id]
	if !ok {
		return errNotFound
	}
	m.TotalMesa = totalMesa
	m.TotalPagado = totalPagado
	m.TotalPendiente = totalPendiente
	return nil
}

func (r *stubMesaRepo) CreateCliente(_ context.Context, c *model.MesaCliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now()
	r.clientes[c.ID] = c
	r.orden = append(r.orden, c.ID)
	return nil
}

func (r *stubMesaRepo) FindClienteByID(_ context.Context, id uuid.UUID) (*model.MesaCliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, errNotFound
	}
	out := *c
	out.Productos = append([]model.MesaClienteDetalle(nil), r.detalles[id]...)
	return &out, nil
}

func (r *stubMesaRepo) UpdateClienteTx(_ *gorm.DB, c *model.MesaCliente) error {
	if _, ok := r.clientes[c.ID]; !ok {
		return errNotFound
	}
	cc := *c
	cc.Productos = nil
	r.clientes[c.ID] = &cc
	return nil
}

func (r *stubMesaRepo) CreateDetalleTx(_ *gorm.DB, d *model.MesaClienteDetalle) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	d.CreatedAt = time.Now()
	r.detalles[d.MesaClienteID] = append(r.detalles[d.MesaClienteID], *d)
	return nil
}

func (r *stubMesaRepo) DeleteDetallesByClienteTx(_ *gorm.DB, clienteID uuid.UUID) error {
	delete(r.detalles, clienteID)
	return nil
}

func (r *stubMesaRepo) DeleteDetallesByMesaTx(_ *gorm.DB, mesaID uuid.UUID) error {
	for cid, c := range r.clientes {
		if c.MesaID == mesaID {
			delete(r.detalles, cid)
		}
	}
	return nil
}

func (r *stubMesaRepo) DeleteClientesByMesaTx(_ *gorm.DB, mesaID uuid.UUID) error {
	for cid, c := range r.clientes {
		if c.MesaID == mesaID {
			delete(r.clientes, cid)
		}
	}
	return nil
}

func (r *stubMesaRepo) DeleteMesaTx(_ *gorm.DB, mesaID uuid.UUID) error {
	delete(r.mesas, mesaID)
	return nil
}

func (r *stubMesaRepo) DB() *gorm.DB { return nil }

var _ repository.MesaRepository = (*stubMesaRepo)(nil)

// ── Usuario ───────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios   map[uuid.UUID]*model.Usuario
	membresias []*model.UsuarioTienda
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, errNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) ListMembresias(_ context.Context, usuarioID uuid.UUID) ([]model.UsuarioTienda, error) {
	var out []model.UsuarioTienda
	for _, m := range r.membresias {
		if m.UsuarioID == usuarioID && m.Activo {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) FindMembresia(_ context.Context, usuarioID, tiendaID uuid.UUID) (*model.UsuarioTienda, error) {
	for _, m := range r.membresias {
		if m.UsuarioID == usuarioID && m.TiendaID == tiendaID {
			return m, nil
		}
	}
	return nil, errNotFound
}

func (r *stubUsuarioRepo) CreateMembresiaTx(_ *gorm.DB, m *model.UsuarioTienda) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.Activo = true
	r.membresias = append(r.membresias, m)
	return nil
}

func (r *stubUsuarioRepo) DesactivarMembresia(_ context.Context, id uuid.UUID) error {
	for _, m := range r.membresias {
		if m.ID == id {
			m.Activo = false
			return nil
		}
	}
	return errNotFound
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// ── Tienda ────────────────────────────────────────────────────────────────────

type stubTiendaRepo struct {
	tiendas map[uuid.UUID]*model.Tienda
}

func newStubTiendaRepo() *stubTiendaRepo {
	return &stubTiendaRepo{tiendas: make(map[uuid.UUID]*model.Tienda)}
}

func (r *stubTiendaRepo) CreateTx(_ *gorm.DB, t *model.Tienda) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.tiendas[t.ID] = t
	return nil
}

func (r *stubTiendaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Tienda, error) {
	t, ok := r.tiendas[id]
	if !ok {
		return nil, errNotFound
	}
	return t, nil
}

func (r *stubTiendaRepo) FindBySlug(_ context.Context, slug string) (*model.Tienda, error) {
	for _, t := range r.tiendas {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, errNotFound
}

func (r *stubTiendaRepo) Update(_ context.Context, t *model.Tienda) error {
	r.tiendas[t.ID] = t
	return nil
}

func (r *stubTiendaRepo) DB() *gorm.DB { return nil }

var _ repository.TiendaRepository = (*stubTiendaRepo)(nil)

// ── Categoria ─────────────────────────────────────────────────────────────────

type stubCategoriaRepo struct {
	categorias map[uuid.UUID]*model.Categoria
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{categorias: make(map[uuid.UUID]*model.Categoria)}
}

func (r *stubCategoriaRepo) Crear(_ context.Context, c *model.Categoria) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) CrearBatchTx(_ *gorm.DB, categorias []model.Categoria) error {
	for i := range categorias {
		if categorias[i].ID == uuid.Nil {
			categorias[i].ID = uuid.New()
		}
		c := categorias[i]
		r.categorias[c.ID] = &c
	}
	return nil
}

func (r *stubCategoriaRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (r *stubCategoriaRepo) ObtenerPorNombre(_ context.Context, tiendaID uuid.UUID, nombre string) (*model.Categoria, error) {
	for _, c := range r.categorias {
		if c.TiendaID == tiendaID && c.Nombre == nombre && c.Activa {
			return c, nil
		}
	}
	return nil, errNotFound
}

func (r *stubCategoriaRepo) Listar(_ context.Context, tiendaID uuid.UUID) ([]model.Categoria, error) {
	var out []model.Categoria
	for _, c := range r.categorias {
		if c.TiendaID == tiendaID && c.Activa {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Orden < out[j].Orden })
	return out, nil
}

func (r *stubCategoriaRepo) Actualizar(_ context.Context, c *model.Categoria) error {
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	c, ok := r.categorias[id]
	if !ok {
		return errNotFound
	}
	c.Activa = false
	return nil
}

var _ repository.CategoriaRepository = (*stubCategoriaRepo)(nil)

// ── Gasto ─────────────────────────────────────────────────────────────────────

type stubGastoRepo struct {
	gastos map[uuid.UUID]*model.Gasto
}

func newStubGastoRepo() *stubGastoRepo {
	return &stubGastoRepo{gastos: make(map[uuid.UUID]*model.Gasto)}
}

func (r *stubGastoRepo) Create(_ context.Context, g *model.Gasto) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	r.gastos[g.ID] = g
	return nil
}

func (r *stubGastoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Gasto, error) {
	g, ok := r.gastos[id]
	if !ok {
		return nil, errNotFound
	}
	return g, nil
}

func (r *stubGastoRepo) List(_ context.Context, tiendaID uuid.UUID, desde, hasta time.Time, limit, offset int) ([]model.Gasto, int64, error) {
	var out []model.Gasto
	for _, g := range r.gastos {
		if g.TiendaID == tiendaID && !g.FechaGasto.Before(desde) && g.FechaGasto.Before(hasta) {
			out = append(out, *g)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubGastoRepo) SumRango(_ context.Context, tiendaID uuid.UUID, desde, hasta time.Time) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, g := range r.gastos {
		if g.TiendaID == tiendaID && !g.FechaGasto.Before(desde) && g.FechaGasto.Before(hasta) {
			sum = sum.Add(g.Monto)
		}
	}
	return sum, nil
}

func (r *stubGastoRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.gastos[id]; !ok {
		return errNotFound
	}
	delete(r.gastos, id)
	return nil
}

var _ repository.GastoRepository = (*stubGastoRepo)(nil)

// ── Cliente (fiado) ───────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) List(_ context.Context, tiendaID uuid.UUID, _ string) ([]model.Cliente, error) {
	var out []model.Cliente
	for _, c := range r.clientes {
		if c.TiendaID == tiendaID && c.Activo {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubClienteRepo) CountActivos(_ context.Context, tiendaID uuid.UUID) (int64, error) {
	var count int64
	for _, c := range r.clientes {
		if c.TiendaID == tiendaID && c.Activo {
			count++
		}
	}
	return count, nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) AjustarSaldoTx(_ *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	c, ok := r.clientes[id]
	if !ok {
		return errNotFound
	}
	c.SaldoPendiente = c.SaldoPendiente.Add(delta)
	return nil
}

func (r *stubClienteRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	c, ok := r.clientes[id]
	if !ok {
		return errNotFound
	}
	c.Activo = false
	return nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)
