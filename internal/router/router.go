package router

import (
	"time"

	"github.com/ingsebastiansierra/tiendaya/internal/config"
	"github.com/ingsebastiansierra/tiendaya/internal/handler"
	"github.com/ingsebastiansierra/tiendaya/internal/infra"
	"github.com/ingsebastiansierra/tiendaya/internal/middleware"
	"github.com/ingsebastiansierra/tiendaya/internal/repository"
	"github.com/ingsebastiansierra/tiendaya/internal/service"
	"github.com/ingsebastiansierra/tiendaya/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	cache := infra.NewCache(rdb)
	storage := infra.NewImageStorage(cfg.ImageStoragePath, cfg.PublicBaseURL)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	tiendaRepo := repository.NewTiendaRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	metodoRepo := repository.NewMetodoPagoRepository(db)
	cajaRepo := repository.NewCajaRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	mesaRepo := repository.NewMesaRepository(db)
	gastoRepo := repository.NewGastoRepository(db)
	alertaRepo := repository.NewAlertaRepository(db)
	clienteRepo := repository.NewClienteRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	onboardingSvc := service.NewOnboardingService(tiendaRepo, usuarioRepo, categoriaRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	productoSvc := service.NewProductoService(productoRepo, cache)
	metodoSvc := service.NewMetodoPagoService(metodoRepo)
	cajaSvc := service.NewCajaService(cajaRepo, ventaRepo)
	ventaSvc := service.NewVentaService(ventaRepo, cajaRepo, productoRepo, metodoRepo, alertaRepo, dispatcher)
	mesaSvc := service.NewMesaService(mesaRepo, productoRepo, metodoRepo, cajaRepo)
	gastoSvc := service.NewGastoService(gastoRepo)
	alertaSvc := service.NewAlertaService(alertaRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	reporteSvc := service.NewReporteService(ventaRepo, gastoRepo, productoRepo, clienteRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	onboardingH := handler.NewOnboardingHandler(onboardingSvc)
	categoriasH := handler.NewCategoriaHandler(categoriaSvc)
	productosH := handler.NewProductoHandler(productoSvc, storage)
	metodosH := handler.NewMetodoPagoHandler(metodoSvc)
	cajaH := handler.NewCajaHandler(cajaSvc)
	ventasH := handler.NewVentaHandler(ventaSvc, dispatcher)
	mesasH := handler.NewMesaHandler(mesaSvc)
	gastosH := handler.NewGastoHandler(gastoSvc)
	alertasH := handler.NewAlertaHandler(alertaSvc)
	clientesH := handler.NewClienteHandler(clienteSvc)
	reportesH := handler.NewReporteHandler(reporteSvc)
	consultaH := handler.NewConsultaPreciosHandler(productoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.Static("/imagenes", cfg.ImageStoragePath)

	auth := r.Group("/v1/auth")
	{
		auth.POST("/registro", middleware.LoginRateLimiter(), authH.Registro)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Price check kiosk — no auth required
	r.GET("/v1/public/tiendas/:tiendaId/precios", consultaH.Consultar)

	// Authenticated, not yet tienda-scoped
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	r.POST("/v1/onboarding", jwtMW, onboardingH.Completar)

	// Tienda-scoped: membership is resolved (and cached) per request
	tienda := r.Group("/v1/tiendas/:tiendaId", jwtMW, middleware.TiendaAccess(usuarioRepo, cache))
	{
		categorias := tienda.Group("/categorias")
		{
			categorias.POST("", categoriasH.Crear)
			categorias.GET("", categoriasH.Listar)
			categorias.PUT("/:id", categoriasH.Actualizar)
			categorias.DELETE("/:id", categoriasH.Desactivar)
		}

		productos := tienda.Group("/productos")
		{
			productos.GET("", productosH.Listar)
			productos.GET("/:id", productosH.Get)
			productos.POST("", productosH.Crear)
			// Price changes and negative stock deltas enforce rol elevado
			// inside the service; plain edits stay open to all members.
			productos.PUT("/:id", productosH.Actualizar)
			productos.PATCH("/:id/stock", productosH.AjustarStock)
			productos.POST("/:id/imagen", productosH.SubirImagen)
			productos.DELETE("/:id", middleware.RequireRolElevado(), productosH.Eliminar)
		}

		tienda.GET("/metodos-pago", metodosH.Listar)

		caja := tienda.Group("/caja")
		{
			caja.POST("/abrir", cajaH.Abrir)
			caja.POST("/:id/cerrar", cajaH.Cerrar)
			caja.GET("/activa", cajaH.Activa)
			caja.GET("/historial", cajaH.Historial)
			caja.GET("/:id/resumen", cajaH.Resumen)
		}

		ventas := tienda.Group("/ventas")
		{
			ventas.POST("", ventasH.Registrar)
			ventas.GET("", ventasH.Listar)
			ventas.GET("/:id", ventasH.Get)
			ventas.POST("/:id/recibo", ventasH.EnviarRecibo)
		}

		mesas := tienda.Group("/mesas")
		{
			mesas.POST("", mesasH.Abrir)
			mesas.GET("", mesasH.Listar)
			mesas.GET("/:id", mesasH.Get)
			mesas.POST("/:id/clientes", mesasH.AgregarCliente)
			mesas.POST("/:id/clientes/:clienteId/productos", mesasH.AgregarProducto)
			mesas.POST("/:id/clientes/:clienteId/cobrar", mesasH.Cobrar)
			mesas.POST("/:id/clientes/:clienteId/reabrir", mesasH.Reabrir)
			mesas.POST("/:id/cerrar", mesasH.Cerrar)
			mesas.DELETE("/:id", middleware.RequireRolElevado(), mesasH.Eliminar)
		}

		gastos := tienda.Group("/gastos")
		{
			gastos.POST("", gastosH.Registrar)
			gastos.GET("", gastosH.Listar)
			gastos.DELETE("/:id", middleware.RequireRolElevado(), gastosH.Eliminar)
		}

		alertas := tienda.Group("/alertas")
		{
			alertas.GET("", alertasH.Listar)
			alertas.PATCH("/:id/leida", alertasH.MarcarLeida)
		}

		clientes := tienda.Group("/clientes")
		{
			clientes.POST("", clientesH.Crear)
			clientes.GET("", clientesH.Listar)
			clientes.DELETE("/:id", clientesH.Desactivar)
		}

		tienda.GET("/reportes/dashboard", reportesH.Dashboard)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
