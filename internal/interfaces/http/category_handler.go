package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/categorias-api/internal/application/category"
	"github.com/jhoicas/categorias-api/internal/application/dto"
	"github.com/jhoicas/categorias-api/pkg/logger"
)

// CategoryHandler maneja las peticiones HTTP para Category.
type CategoryHandler struct {
	create *category.CreateCategoryUseCase
	get    *category.GetCategoryUseCase
	update *category.UpdateCategoryUseCase
	delete *category.DeleteCategoryUseCase
	list   *category.ListCategoriesUseCase
	log    *logger.Logger
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(deps RouterDeps) *CategoryHandler {
	return &CategoryHandler{
		create: deps.CreateCategory,
		get:    deps.GetCategory,
		update: deps.UpdateCategory,
		delete: deps.DeleteCategory,
		list:   deps.ListCategories,
		log:    deps.Logger.Component("category-handler"),
	}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.DataResponse[dto.CategoryResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.create.Execute(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse[*dto.CategoryResponse]{Data: out})
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría (UUID)"
// @Success      200  {object}  dto.DataResponse[dto.CategoryResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.get.Execute(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.DataResponse[*dto.CategoryResponse]{Data: out})
}

// Update godoc
// @Summary      Actualizar categoría
// @Description  Solo se modifican los campos enviados; "description": null elimina la descripción.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la categoría (UUID)"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.DataResponse[dto.CategoryResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /categories/{id} [patch]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.update.Execute(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.DataResponse[*dto.CategoryResponse]{Data: out})
}

// Delete godoc
// @Summary      Eliminar categoría
// @Tags         categories
// @Param        id   path  string  true  "ID de la categoría (UUID)"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.delete.Execute(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Param        page      query  int     false  "Página"               default(1)
// @Param        per_page  query  int     false  "Elementos por página"  default(15)
// @Param        sort      query  string  false  "Campo de orden (name, created_at)"
// @Param        sort_dir  query  string  false  "asc | desc"
// @Param        filter    query  string  false  "Filtro por nombre"
// @Success      200       {object}  dto.CollectionResponse[dto.CategoryResponse]
// @Router       /categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	in := dto.ListCategoriesRequest{
		Page:    c.QueryInt("page", 0),
		PerPage: c.QueryInt("per_page", 0),
		Sort:    c.Query("sort"),
		SortDir: c.Query("sort_dir"),
		Filter:  c.Query("filter"),
	}
	out, err := h.list.Execute(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out.Collection())
}
