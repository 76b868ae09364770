package memory

import (
	"context"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/categorias-api/internal/domain/entity"
	"github.com/jhoicas/categorias-api/internal/domain/repository"
	"github.com/jhoicas/categorias-api/internal/domain/valueobject"
)

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

// CategoryRepository implementación en memoria de repository.CategoryRepository.
type CategoryRepository struct {
	base Repository[*entity.Category]
}

// NewCategoryRepository construye el repositorio vacío.
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) Insert(ctx context.Context, c *entity.Category) error {
	return r.base.Insert(ctx, c)
}

func (r *CategoryRepository) BulkInsert(ctx context.Context, cs []*entity.Category) error {
	return r.base.BulkInsert(ctx, cs)
}

func (r *CategoryRepository) Update(ctx context.Context, c *entity.Category) error {
	return r.base.Update(ctx, c)
}

func (r *CategoryRepository) Delete(ctx context.Context, id valueobject.ID) error {
	return r.base.Delete(ctx, id)
}

func (r *CategoryRepository) FindByID(ctx context.Context, id valueobject.ID) (*entity.Category, error) {
	c, ok := r.base.FindByID(ctx, id)
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	return r.base.FindAll(ctx), nil
}

func (r *CategoryRepository) SortableFields() []string {
	return repository.CategorySortableFields
}

// Items contenido actual en orden de inserción.
func (r *CategoryRepository) Items() []*entity.Category {
	return r.base.Items()
}

// Search filtra por nombre, ordena y pagina.
func (r *CategoryRepository) Search(ctx context.Context, params repository.SearchParams) (*repository.CategorySearchResult, error) {
	items := applyFilter(r.base.FindAll(ctx), params.Filter)
	applySort(items, params, r.SortableFields())

	total := len(items)
	start := min(params.Offset(), total)
	end := min(start+params.PerPage, total)

	return repository.NewSearchResult(items[start:end], total, params.Page, params.PerPage), nil
}

// applyFilter coincidencia de subcadena en el nombre sin distinguir mayúsculas.
func applyFilter(items []*entity.Category, filter string) []*entity.Category {
	if filter == "" {
		return items
	}
	fold := cases.Fold()
	needle := fold.String(filter)
	return slices.DeleteFunc(items, func(c *entity.Category) bool {
		return !strings.Contains(fold.String(c.Name), needle)
	})
}

// applySort ordena in situ de forma estable; los empates conservan el orden de inserción.
// Sin campo permitido ordena por created_at descendente.
func applySort(items []*entity.Category, params repository.SearchParams, sortable []string) {
	field, dir := "created_at", repository.SortDesc
	if params.SortableBy(sortable) {
		field, dir = params.Sort, params.SortDir
	}
	slices.SortStableFunc(items, func(a, b *entity.Category) int {
		var n int
		switch field {
		case "name":
			n = strings.Compare(a.Name, b.Name)
		default:
			n = a.CreatedAt.Compare(b.CreatedAt)
		}
		if dir == repository.SortDesc {
			return -n
		}
		return n
	})
}
