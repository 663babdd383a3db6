package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/unitedfins/inventory-api/internal/application/auth"
	"github.com/unitedfins/inventory-api/internal/application/usecase"
	"github.com/unitedfins/inventory-api/internal/infrastructure/postgres"
	infraredis "github.com/unitedfins/inventory-api/internal/infrastructure/redis"
	"github.com/unitedfins/inventory-api/internal/infrastructure/sms"
	"github.com/unitedfins/inventory-api/internal/infrastructure/totp"
	httpRouter "github.com/unitedfins/inventory-api/internal/interfaces/http"
	"github.com/unitedfins/inventory-api/pkg/config"
	"github.com/unitedfins/inventory-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	redisClient, err := infraredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	userRepo := postgres.NewUserRepository(pool)
	codeRepo := postgres.NewOneTimeCodeRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)

	blacklist := infraredis.NewTokenBlacklist(redisClient)
	totpProvider := totp.NewProvider(cfg.TwoFactor.Issuer)
	smsSender := sms.NewLoggerSender(log)

	authUC := auth.NewAuthUseCase(userRepo, auditRepo, blacklist, auth.TokenConfig{
		Secret:         cfg.JWT.Secret,
		AccessMinutes:  cfg.JWT.AccessMinutes,
		RefreshMinutes: cfg.JWT.RefreshMinutes,
		Issuer:         cfg.JWT.Issuer,
	}, log)
	twoFactorUC := auth.NewTwoFactorUseCase(userRepo, codeRepo, auditRepo, totpProvider, smsSender, auth.TwoFactorConfig{
		Issuer:    cfg.TwoFactor.Issuer,
		OTPExpiry: time.Duration(cfg.TwoFactor.OTPExpiryMins) * time.Minute,
	}, log)
	userUC := usecase.NewUserUseCase(userRepo, auditRepo, log)
	auditUC := usecase.NewAuditUseCase(auditRepo)
	vendorUC := usecase.NewVendorUseCase(vendorRepo, log)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, log)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, log)
	inventoryUC := usecase.NewInventoryUseCase(stockRepo, productRepo, vendorRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if !httpRouter.MountSwagger(app, "./docs/swagger.json", "Inventory API") {
		log.Warn().Msg("docs/swagger.json no encontrado: Swagger UI deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		TwoFactorUC: twoFactorUC,
		UserUC:      userUC,
		AuditUC:     auditUC,
		VendorUC:    vendorUC,
		CategoryUC:  categoryUC,
		ProductUC:   productUC,
		InventoryUC: inventoryUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
