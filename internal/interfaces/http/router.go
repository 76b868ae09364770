package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/categorias-api/internal/application/category"
	"github.com/jhoicas/categorias-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CreateCategory *category.CreateCategoryUseCase
	GetCategory    *category.GetCategoryUseCase
	UpdateCategory *category.UpdateCategoryUseCase
	DeleteCategory *category.DeleteCategoryUseCase
	ListCategories *category.ListCategoriesUseCase
	Logger         *logger.Logger
}

// Middlewares registra request id, el log de peticiones y recover. Recover va por dentro
// del log para que un pánico quede registrado como 500.
func Middlewares(app *fiber.App, log *logger.Logger) {
	app.Use(requestid.New())
	app.Use(RequestLogger(log.Component("http")))
	app.Use(recover.New())
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}

	categories := app.Group("/categories")
	categoryHandler := NewCategoryHandler(deps)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Patch("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)
}
