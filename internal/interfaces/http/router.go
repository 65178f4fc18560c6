package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/brdocs-api/internal/application/usecase"
	"github.com/jhoicas/brdocs-api/internal/application/validation"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName    string
	DocumentUC *usecase.DocumentUseCase
	CustomerUC *usecase.CustomerUseCase
	Checker    *validation.Checker
	// Metrics opcional; sin él no se monta /metrics.
	Metrics *Metrics
}

// NewApp construye la app Fiber con middlewares y rutas.
func NewApp(deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 15,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler,
		// El CNPJ puede llegar con la barra codificada (%2F).
		UnescapePath: true,
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
	}
	app.Use(AccessLog())
	app.Use(recover.New())

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}

	// Validación de documentos
	documentHandler := NewDocumentHandler(deps.DocumentUC, deps.Checker)
	app.Get("/valida-cpf/:cpf", documentHandler.ValidateCPF)
	app.Post("/valida-cpf", documentHandler.ValidateCPFBody)
	app.Get("/valida-cnpj/+", documentHandler.ValidateCNPJ)
	app.Get("/valida-cnh/:cnh", documentHandler.ValidateCNH)
	app.Get("/valida-cep/:cep", documentHandler.LookupCEP)

	// Clientes
	customers := app.Group("/clientes")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Checker)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:cpf", customerHandler.Get)
	customers.Put("/:cpf", customerHandler.Update)
	customers.Delete("/:cpf", customerHandler.Delete)
}
