package category

import (
	"context"

	"github.com/jhoicas/categorias-api/internal/application/dto"
	"github.com/jhoicas/categorias-api/internal/domain/entity"
	"github.com/jhoicas/categorias-api/internal/domain/repository"
	"github.com/jhoicas/categorias-api/internal/domain/valueobject"
)

// UpdateCategoryUseCase aplica cambios parciales a una categoría existente.
type UpdateCategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewUpdateCategoryUseCase construye el caso de uso.
func NewUpdateCategoryUseCase(repo repository.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{repo: repo}
}

// Execute solo modifica los campos presentes en la entrada. Una descripción enviada como
// null se elimina.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, rawID string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
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
	// los cambios se aplican sobre una copia; la instancia leída queda intacta si alguno falla
	updated := *c
	if err := apply(&updated, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return toCategoryResponse(&updated), nil
}

func apply(c *entity.Category, in dto.UpdateCategoryRequest) error {
	if in.Name != nil {
		if err := c.ChangeName(*in.Name); err != nil {
			return err
		}
	}
	if in.Description.Set {
		if err := c.ChangeDescription(in.Description.Value); err != nil {
			return err
		}
	}
	if in.IsActive != nil {
		if *in.IsActive {
			c.Activate()
		} else {
			c.Deactivate()
		}
	}
	return nil
}
