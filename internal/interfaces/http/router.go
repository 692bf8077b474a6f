package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/lecoq/erp-admin/internal/application/access"
	"github.com/lecoq/erp-admin/internal/application/auth"
	"github.com/lecoq/erp-admin/internal/application/usecase"
)

// RouterDeps dependencias para el router de la consola.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProductoUC     *usecase.ProductoUseCase
	PedidoUC       *usecase.PedidoUseCase
	PedidoPDF      *usecase.PedidoPDFUseCase
	DistribucionUC *usecase.DistribucionUseCase
	MaquiladoUC    *usecase.MaquiladoUseCase
	UsuarioUC      *usecase.UsuarioUseCase
	DashboardUC    *usecase.DashboardUseCase
	Metrics        http.Handler // nil = sin /metrics
}

// Router registra las rutas de la consola. Las secciones siguen la tabla de
// access: sin sesión redirigen a /login, con un rol sin acceso a /.
func Router(app *fiber.App, deps RouterDeps) {
	session := deps.AuthUC.Session()
	app.Use(SameOrigin())

	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Get(access.RouteLogin, authHandler.LoginPage)
	app.Post(access.RouteLogin, authHandler.Login)
	app.Post("/logout", authHandler.Logout)
	app.Get("/session", authHandler.Session)
	app.Post("/session/validate", authHandler.Validate)
	app.Get("/menu", RequireSession(session), authHandler.Menu)

	// Dashboard (cualquier sesión)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	app.Get(access.RouteHome, append(guard(session, access.RouteHome), dashboardHandler.Summary)...)

	// Productos (cualquier sesión)
	productos := app.Group(access.RouteProductos, guard(session, access.RouteProductos)...)
	productHandler := NewProductHandler(deps.ProductoUC)
	productos.Get("/", productHandler.List)
	productos.Post("/", productHandler.Create)
	productos.Get("/bajo-stock", productHandler.LowStock)
	productos.Get("/:id", productHandler.GetByID)
	productos.Put("/:id", productHandler.Update)
	productos.Delete("/:id", productHandler.Delete)

	// Pedidos (ADMIN, VENTAS)
	pedidos := app.Group(access.RoutePedidos, guard(session, access.RoutePedidos)...)
	pedidoHandler := NewPedidoHandler(deps.PedidoUC, deps.PedidoPDF)
	pedidos.Get("/", pedidoHandler.List)
	pedidos.Post("/", pedidoHandler.Create)
	pedidos.Get("/:id", pedidoHandler.GetByID)
	pedidos.Put("/:id", pedidoHandler.Update)
	pedidos.Get("/:id/pdf", pedidoHandler.DownloadPDF)

	// Distribuciones (ADMIN, VENTAS)
	distribuciones := app.Group(access.RouteDistribuciones, guard(session, access.RouteDistribuciones)...)
	distribucionHandler := NewDistribucionHandler(deps.DistribucionUC)
	distribuciones.Get("/", distribucionHandler.List)
	distribuciones.Post("/", distribucionHandler.Create)
	distribuciones.Get("/:id", distribucionHandler.GetByID)
	distribuciones.Put("/:id", distribucionHandler.Update)
	distribuciones.Delete("/:id", distribucionHandler.Delete)

	// Maquilados (ADMIN, MAQUILA)
	maquilados := app.Group(access.RouteMaquilados, guard(session, access.RouteMaquilados)...)
	maquiladoHandler := NewMaquiladoHandler(deps.MaquiladoUC)
	maquilados.Get("/", maquiladoHandler.List)
	maquilados.Post("/", maquiladoHandler.Create)
	maquilados.Get("/numero/:numero", maquiladoHandler.FindByNumero)
	maquilados.Get("/:id", maquiladoHandler.GetByID)
	maquilados.Put("/:id", maquiladoHandler.Update)
	maquilados.Delete("/:id", maquiladoHandler.Delete)

	// Usuarios (ADMIN)
	usuarios := app.Group(access.RouteUsuarios, guard(session, access.RouteUsuarios)...)
	userHandler := NewUserHandler(deps.UsuarioUC)
	usuarios.Get("/", userHandler.List)
	usuarios.Post("/", userHandler.Create)
}
