package category

import (
	"context"

	"github.com/jhoicas/categorias-api/internal/domain/repository"
	"github.com/jhoicas/categorias-api/internal/domain/valueobject"
)

// DeleteCategoryUseCase elimina una categoría por ID.
type DeleteCategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewDeleteCategoryUseCase construye el caso de uso.
func NewDeleteCategoryUseCase(repo repository.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{repo: repo}
}

// Execute propaga domain.ErrNotFound desde el repositorio.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, rawID string) error {
	id, err := valueobject.ParseID(rawID)
	if err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}
