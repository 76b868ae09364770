package category

import (
	"context"

	"github.com/jhoicas/categorias-api/internal/application/dto"
	"github.com/jhoicas/categorias-api/internal/domain/entity"
	"github.com/jhoicas/categorias-api/internal/domain/repository"
)

// CreateCategoryUseCase crea y persiste una categoría.
type CreateCategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCreateCategoryUseCase construye el caso de uso.
func NewCreateCategoryUseCase(repo repository.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{repo: repo}
}

// Execute devuelve *domain.ValidationError si la entrada viola las reglas de la categoría.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := entity.NewCategory(entity.CreateCategoryCommand{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    in.IsActive,
	})
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Insert(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}
