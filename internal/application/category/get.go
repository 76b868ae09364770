package category

import (
	"context"

	"github.com/jhoicas/categorias-api/internal/application/dto"
	"github.com/jhoicas/categorias-api/internal/domain/repository"
	"github.com/jhoicas/categorias-api/internal/domain/valueobject"
)

// GetCategoryUseCase obtiene una categoría por ID.
type GetCategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewGetCategoryUseCase construye el caso de uso.
func NewGetCategoryUseCase(repo repository.CategoryRepository) *GetCategoryUseCase {
	return &GetCategoryUseCase{repo: repo}
}

// Execute devuelve domain.ErrInvalidID o domain.ErrNotFound según el caso.
func (uc *GetCategoryUseCase) Execute(ctx context.Context, rawID string) (*dto.CategoryResponse, error) {
	id, err := valueobject.ParseID(rawID)
	if err != nil {
		return nil, err
	}
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound(id)
	}
	return toCategoryResponse(c), nil
}
