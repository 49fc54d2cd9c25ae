package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/Colaboradores-api/internal/application/auth"
	"github.com/jhoicas/Colaboradores-api/internal/application/usecase"
	"github.com/jhoicas/Colaboradores-api/internal/infrastructure/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName        string
	CollaboratorUC *usecase.CollaboratorUseCase
	WizardUC       *usecase.WizardUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(metrics.Middleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token de administrador)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(auth.RoleAdmin))

	collaborators := protected.Group("/collaborators")
	collaboratorHandler := NewCollaboratorHandler(deps.CollaboratorUC)
	collaborators.Get("/", collaboratorHandler.List)
	collaborators.Get("/report.pdf", collaboratorHandler.Report)
	collaborators.Post("/resolve", collaboratorHandler.Resolve)
	collaborators.Get("/:id", collaboratorHandler.GetByID)

	wz := protected.Group("/wizard")
	wizardHandler := NewWizardHandler(deps.WizardUC)
	wz.Post("/", wizardHandler.StartCreate)
	wz.Post("/edit/:id", wizardHandler.StartEdit)
	wz.Get("/:sid", wizardHandler.Get)
	wz.Delete("/:sid", wizardHandler.Cancel)
	wz.Patch("/:sid/fields", wizardHandler.UpdateFields)
	wz.Post("/:sid/next", wizardHandler.Next)
	wz.Post("/:sid/back", wizardHandler.Back)
	wz.Post("/:sid/ack", wizardHandler.Acknowledge)
	wz.Post("/:sid/delete/request", wizardHandler.RequestDelete)
	wz.Post("/:sid/delete/cancel", wizardHandler.CancelDelete)
	wz.Post("/:sid/delete/confirm", wizardHandler.ConfirmDelete)
}
