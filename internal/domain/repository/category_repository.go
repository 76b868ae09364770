package repository

import (
	"context"

	"github.com/jhoicas/categorias-api/internal/domain/entity"
	"github.com/jhoicas/categorias-api/internal/domain/valueobject"
)

// CategorySortableFields campos por los que se puede ordenar una búsqueda de categorías.
var CategorySortableFields = []string{"name", "created_at"}

// CategorySearchResult página de categorías.
type CategorySearchResult = SearchResult[*entity.Category]

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Insert(ctx context.Context, category *entity.Category) error
	BulkInsert(ctx context.Context, categories []*entity.Category) error
	// Update devuelve domain.ErrNotFound si la categoría no existe.
	Update(ctx context.Context, category *entity.Category) error
	// Delete devuelve domain.ErrNotFound si la categoría no existe.
	Delete(ctx context.Context, id valueobject.ID) error
	// FindByID devuelve (nil, nil) si la categoría no existe.
	FindByID(ctx context.Context, id valueobject.ID) (*entity.Category, error)
	FindAll(ctx context.Context) ([]*entity.Category, error)
	Search(ctx context.Context, params SearchParams) (*CategorySearchResult, error)
	SortableFields() []string
}
