package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/igcalvo/licores-api/internal/application/auth"
	"github.com/igcalvo/licores-api/internal/application/inventory"
	"github.com/igcalvo/licores-api/internal/application/usecase"
	"github.com/igcalvo/licores-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	LocalUC      *usecase.LocalUseCase
	UsuarioUC    *usecase.UsuarioUseCase
	ProductoUC   *usecase.ProductoUseCase
	ConfigUC     *usecase.ConfigUseCase
	PesajeUC     *inventory.PesajeUseCase
	BotellaUC    *inventory.BotellaUseCase
	MovimientoUC *inventory.MovimientoUseCase
	ReporteUC    *inventory.ReporteUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Superficie pública, espejo de la API original
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)

	productoHandler := NewProductoHandler(deps.ProductoUC)
	api.Get("/productos", productoHandler.ListPublico)

	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC)
	api.Get("/movimientos", movimientoHandler.ListarPublico)
	// El registro directo es público, pero si viene sesión el autor se firma
	// con ella y el movimiento queda confinado a su local.
	api.Post("/movimientos", OptionalAuthMiddleware(deps.JWTSecret), movimientoHandler.Registrar)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Locales (solo admin)
	locales := protected.Group("/locales", RequireRole(entity.RolAdmin))
	localHandler := NewLocalHandler(deps.LocalUC)
	locales.Post("/", localHandler.Create)
	locales.Get("/", localHandler.List)
	locales.Get("/:id", localHandler.GetByID)
	locales.Put("/:id", localHandler.Update)
	locales.Delete("/:id", localHandler.Delete)

	// Usuarios (solo admin)
	usuarios := protected.Group("/usuarios", RequireRole(entity.RolAdmin))
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)

	// Inventario (cualquier sesión; el alcance confina por local)
	inventario := protected.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.PesajeUC, deps.BotellaUC)
	inventario.Post("/pesajes", inventarioHandler.RegistrarPesaje)
	inventario.Post("/botellas", inventarioHandler.AjustarBotellas)
	inventario.Get("/densidades", productoHandler.Densidades)
	inventario.Post("/productos", productoHandler.Create)
	inventario.Get("/productos", productoHandler.List)
	inventario.Get("/productos/:id", productoHandler.GetDetalle)
	inventario.Put("/productos/:id", productoHandler.Update)
	inventario.Delete("/productos/:id", productoHandler.Delete)

	// Movimientos con sesión: listado confinado y exportación
	protected.Get("/movimientos/filtrar", movimientoHandler.Filtrar)
	protected.Get("/movimientos/export", movimientoHandler.Exportar)

	// Reportes
	reportes := protected.Group("/reportes")
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	reportes.Get("/resumen", reporteHandler.Resumen)
	reportes.Get("/consumo", reporteHandler.Consumo)
	reportes.Get("/inventario/pdf", reporteHandler.InventarioPDF)

	// Config: lectura para cualquier sesión, escritura solo admin
	configHandler := NewConfigHandler(deps.ConfigUC)
	protected.Get("/config", configHandler.Get)
	protected.Put("/config", RequireRole(entity.RolAdmin), configHandler.Update)
}
