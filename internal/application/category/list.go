package category

import (
	"context"

	"github.com/jhoicas/categorias-api/internal/application/dto"
	"github.com/jhoicas/categorias-api/internal/domain/repository"
)

// ListCategoriesUseCase búsqueda paginada con filtro por nombre y orden.
type ListCategoriesUseCase struct {
	repo repository.CategoryRepository
}

// NewListCategoriesUseCase construye el caso de uso.
func NewListCategoriesUseCase(repo repository.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{repo: repo}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context, in dto.ListCategoriesRequest) (*dto.CategoryListResponse, error) {
	params := repository.NewSearchParams(repository.SearchInput{
		Page:    in.Page,
		PerPage: in.PerPage,
		Sort:    in.Sort,
		SortDir: in.SortDir,
		Filter:  in.Filter,
	})
	res, err := uc.repo.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CategoryResponse, 0, len(res.Items))
	for _, c := range res.Items {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items:       items,
		Total:       res.Total,
		CurrentPage: res.CurrentPage,
		PerPage:     res.PerPage,
		LastPage:    res.LastPage,
	}, nil
}
