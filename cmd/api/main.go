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

	"github.com/jhoicas/Colaboradores-api/internal/application/auth"
	"github.com/jhoicas/Colaboradores-api/internal/application/usecase"
	"github.com/jhoicas/Colaboradores-api/internal/application/wizard"
	"github.com/jhoicas/Colaboradores-api/internal/infrastructure/docstore"
	infrapdf "github.com/jhoicas/Colaboradores-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/Colaboradores-api/internal/interfaces/http"
	"github.com/jhoicas/Colaboradores-api/pkg/config"
	"github.com/jhoicas/Colaboradores-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, closeStore, err := docstore.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir document store")
	}
	defer closeStore()

	collaboratorRepo := docstore.NewCollaboratorRepository(store, docstore.Options{
		Collection:        cfg.Store.Collection,
		Timeout:           cfg.Store.Timeout,
		StrictEmailLookup: cfg.Store.StrictEmailLookup,
	}, log)

	sessions := wizard.NewSessions(wizard.SessionsConfig{
		Repo:        collaboratorRepo,
		Timeout:     cfg.Store.Timeout,
		Departments: cfg.App.Departments,
		Log:         log,
	})

	// PDF: exportación del listado
	reportGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name)
	collaboratorUC := usecase.NewCollaboratorUseCase(collaboratorRepo, reportGenerator)
	wizardUC := usecase.NewWizardUseCase(sessions, collaboratorRepo)

	if cfg.Admin.Email == "" || cfg.Admin.PasswordHash == "" {
		log.Warn().Msg("ADMIN_EMAIL/ADMIN_PASSWORD_HASH sin configurar: el login quedará deshabilitado")
	}
	authUC := auth.NewAuthUseCase(
		auth.AdminCredentials{Email: cfg.Admin.Email, PasswordHash: cfg.Admin.PasswordHash},
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Colaboradores API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:        cfg.App.Name,
		CollaboratorUC: collaboratorUC,
		WizardUC:       wizardUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
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
