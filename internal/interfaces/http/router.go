package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/unitedfins/inventory-api/internal/application/auth"
	"github.com/unitedfins/inventory-api/internal/application/usecase"
	"github.com/unitedfins/inventory-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	TwoFactorUC *auth.TwoFactorUseCase
	UserUC      *usecase.UserUseCase
	AuditUC     *usecase.AuditUseCase
	VendorUC    *usecase.VendorUseCase
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	InventoryUC *usecase.InventoryUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Los grupos de escritura llevan el
// gate de rol correspondiente; las lecturas solo requieren autenticación.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	adminTier := RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin)
	catalogWriters := RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleInventoryManager)
	stockWriters := RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleInventoryManager, entity.RoleStoreKeeper)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	// Reset de contraseña por OTP (público, respuesta uniforme)
	twoFactorHandler := NewTwoFactorHandler(deps.TwoFactorUC)
	authGroup.Post("/password/request-otp", twoFactorHandler.RequestOTP)
	authGroup.Post("/password/verify-otp", twoFactorHandler.VerifyOTP)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/2fa/enable", twoFactorHandler.Enable)
	protected.Post("/auth/2fa/confirm", twoFactorHandler.Confirm)

	// Users (protegido; el alcance fino lo decide la capa de policy)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.AuthUC)
	users.Get("/", userHandler.List)
	users.Put("/me/password", userHandler.ChangePassword)
	users.Get("/roles/available", adminTier, userHandler.AvailableRoles)
	users.Get("/:id", userHandler.Get)
	users.Post("/", adminTier, userHandler.Create)
	users.Put("/:id", adminTier, userHandler.Update)
	users.Delete("/:id", adminTier, userHandler.Delete)
	users.Post("/:id/block", adminTier, userHandler.Block)
	users.Post("/:id/unblock", adminTier, userHandler.Unblock)
	users.Put("/:id/password", adminTier, userHandler.SetPassword)

	// Auditoría (solo lectura, nivel admin)
	auditHandler := NewAuditHandler(deps.AuditUC)
	protected.Get("/audit-logs", adminTier, auditHandler.List)

	// Vendors (lecturas autenticadas, escrituras nivel admin)
	vendors := protected.Group("/vendors")
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Get("/", vendorHandler.List)
	vendors.Get("/:id", vendorHandler.Get)
	vendors.Post("/", adminTier, vendorHandler.Create)
	vendors.Put("/:id", adminTier, vendorHandler.Update)
	vendors.Patch("/:id/status", adminTier, vendorHandler.SetStatus)
	vendors.Delete("/:id", adminTier, vendorHandler.Delete)

	// Categories (lecturas autenticadas, escrituras nivel admin)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.Get)
	categories.Post("/", adminTier, categoryHandler.Create)
	categories.Put("/:id", adminTier, categoryHandler.Update)
	categories.Patch("/:id/status", adminTier, categoryHandler.SetStatus)
	categories.Delete("/:id", adminTier, categoryHandler.Delete)

	// Products (escrituras también para inventory_manager)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/sku/:sku", productHandler.GetBySKU)
	products.Get("/:id", productHandler.Get)
	products.Post("/", catalogWriters, productHandler.Create)
	products.Put("/:id", catalogWriters, productHandler.Update)
	products.Patch("/:id/status", catalogWriters, productHandler.SetStatus)
	products.Delete("/:id", catalogWriters, productHandler.Delete)

	// Inventory (escrituras también para store_keeper)
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Get("/", inventoryHandler.List)
	inventory.Get("/low-stock", inventoryHandler.LowStock)
	inventory.Get("/product/:id", inventoryHandler.ByProduct)
	inventory.Get("/:id", inventoryHandler.Get)
	inventory.Post("/", stockWriters, inventoryHandler.Create)
	inventory.Put("/:id", stockWriters, inventoryHandler.Update)
	inventory.Post("/:id/adjust", stockWriters, inventoryHandler.Adjust)
	inventory.Delete("/:id", stockWriters, inventoryHandler.Delete)
}
