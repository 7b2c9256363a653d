package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/igcalvo/licores-api/internal/application/auth"
	"github.com/igcalvo/licores-api/internal/application/inventory"
	"github.com/igcalvo/licores-api/internal/application/usecase"
	"github.com/igcalvo/licores-api/internal/infrastructure/excel"
	infrapdf "github.com/igcalvo/licores-api/internal/infrastructure/pdf"
	"github.com/igcalvo/licores-api/internal/infrastructure/postgres"
	"github.com/igcalvo/licores-api/internal/infrastructure/settings"
	httpRouter "github.com/igcalvo/licores-api/internal/interfaces/http"
	"github.com/igcalvo/licores-api/pkg/config"
	"github.com/igcalvo/licores-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("version", config.Version).
		Msg("iniciando aplicación")

	// Los niveles y cantidades viajan como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("creación del esquema")
	}
	if err := postgres.SeedDefaults(ctx, pool, cfg.Seed.AdminUsername, cfg.Seed.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("siembra de datos iniciales")
	}

	ajustes, err := settings.NewStore(cfg.App.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Str("archivo", cfg.App.ConfigFile).Msg("archivo de ajustes")
	}

	localRepo := postgres.NewLocalRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	reporteRepo := postgres.NewReporteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	localUC := usecase.NewLocalUseCase(localRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo, txRunner)
	productoUC := usecase.NewProductoUseCase(productoRepo, movimientoRepo, txRunner)
	configUC := usecase.NewConfigUseCase(ajustes, config.Version)
	pesajeUC := inventory.NewPesajeUseCase(txRunner, productoRepo)
	botellaUC := inventory.NewBotellaUseCase(txRunner)
	movimientoUC := inventory.NewMovimientoUseCase(
		movimientoRepo, productoRepo, excel.NewExcelizeMovimientosExporter(),
	)
	reporteUC := inventory.NewReporteUseCase(
		reporteRepo, ajustes, infrapdf.NewMarotoInventarioGenerator(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Licores API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		LocalUC:      localUC,
		UsuarioUC:    usuarioUC,
		ProductoUC:   productoUC,
		ConfigUC:     configUC,
		PesajeUC:     pesajeUC,
		BotellaUC:    botellaUC,
		MovimientoUC: movimientoUC,
		ReporteUC:    reporteUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
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
