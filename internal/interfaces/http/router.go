package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/poms-pro/internal/application/auth"
	"github.com/tu-usuario/poms-pro/internal/application/usecase"
	"github.com/tu-usuario/poms-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CompanyUC    *usecase.CompanyUseCase
	PartyUC      *usecase.PartyUseCase
	ItemUC       *usecase.ItemUseCase
	UserUC       *usecase.UserUseCase
	JWTSecret    string
	CookieName   string
	CookieSecure bool
	ExpMinutes   int
}

// Router registra el guard de borde, las rutas de la API y las páginas del shell.
func Router(app *fiber.App, deps RouterDeps) {
	// Guard de borde: decide antes de que ninguna página se renderice.
	app.Use(RouteGuard(deps.JWTSecret, deps.CookieName))

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.CookieName, deps.CookieSecure, deps.ExpMinutes)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Post("/validate", authHandler.Validate)

	// Rutas protegidas (Bearer Token o cookie de sesión)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.CookieName))

	// Companies (propiedad por sesión)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/companies", companyHandler.List)
	protected.Post("/companies", companyHandler.Create)
	protected.Put("/companies", companyHandler.Update) // id por query string

	company := protected.Group("/company/:id")
	company.Get("/", companyHandler.Detail)

	// Suppliers de la empresa
	partyHandler := NewPartyHandler(deps.PartyUC)
	suppliers := company.Group("/suppliers")
	suppliers.Get("/", partyHandler.List)
	suppliers.Post("/", partyHandler.Create)
	suppliers.Get("/:supplierId", partyHandler.GetByID)
	suppliers.Put("/:supplierId", partyHandler.Update)
	suppliers.Delete("/:supplierId", partyHandler.Delete)

	// Items de la empresa
	itemHandler := NewItemHandler(deps.ItemUC)
	items := company.Group("/items")
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/:itemId", itemHandler.GetByID)
	items.Patch("/:itemId", itemHandler.Update)
	items.Delete("/:itemId", itemHandler.Delete)

	// Panel admin: el guard de borde no cubre /api/, así que el rol se exige aquí.
	adminUserHandler := NewAdminUserHandler(deps.UserUC)
	admin := protected.Group("/admin", RequireRole(entity.RoleSuperAdmin))
	admin.Get("/users", adminUserHandler.List)
	admin.Post("/users", adminUserHandler.Create)

	// Páginas del shell (tras el RouteGuard; re-verifican rol por su cuenta)
	pages := NewPageHandler()
	app.Get("/", pages.Root)
	app.Get("/login", pages.Login)
	app.Get("/dashboard", pages.Shell("Dashboard", "dashboard", entity.RoleUser, entity.RoleSuperAdmin))
	app.Get("/companies*", pages.Shell("Empresas", "companies", entity.RoleUser, entity.RoleSuperAdmin))
	app.Get("/company/*", pages.Shell("Empresa", "company", entity.RoleUser, entity.RoleSuperAdmin))
	app.Get("/orders*", pages.Shell("Órdenes de compra", "orders", entity.RoleUser, entity.RoleSuperAdmin))
	app.Get("/profile", pages.Shell("Perfil", "profile", entity.RoleUser, entity.RoleSuperAdmin))
	app.Get("/settings", pages.Shell("Configuración", "settings", entity.RoleUser, entity.RoleSuperAdmin))
	app.Get("/admin", pages.Shell("Administración", "admin", entity.RoleSuperAdmin))
	app.Get("/user-management", pages.Shell("Usuarios", "user-management", entity.RoleSuperAdmin))
}
