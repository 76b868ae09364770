package category_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/categorias-api/internal/application/category"
	"github.com/jhoicas/categorias-api/internal/application/dto"
	"github.com/jhoicas/categorias-api/internal/domain"
	"github.com/jhoicas/categorias-api/internal/domain/valueobject"
)

func TestCreateCategory(t *testing.T) {
	cases := []struct {
		name     string
		in       dto.CreateCategoryRequest
		wantDesc *string
		wantAct  bool
	}{
		{"solo nombre", dto.CreateCategoryRequest{Name: "test"}, nil, true},
		{"con descripción", dto.CreateCategoryRequest{Name: "test", Description: ptr("some description")}, ptr("some description"), true},
		{"inactiva", dto.CreateCategoryRequest{Name: "test", IsActive: ptr(false)}, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newSpyRepository()
			uc := category.NewCreateCategoryUseCase(repo)

			out, err := uc.Execute(context.Background(), tc.in)
			require.NoError(t, err)
			assert.Equal(t, 1, repo.inserts)

			id, err := valueobject.ParseID(out.ID)
			require.NoError(t, err)
			stored, err := repo.FindByID(context.Background(), id)
			require.NoError(t, err)
			require.NotNil(t, stored)

			assert.Equal(t, &dto.CategoryResponse{
				ID:          stored.ID.String(),
				Name:        "test",
				Description: tc.wantDesc,
				IsActive:    tc.wantAct,
				CreatedAt:   stored.CreatedAt,
			}, out)
		})
	}
}

func TestCreateCategory_NombreVacio(t *testing.T) {
	repo := newSpyRepository()
	uc := category.NewCreateCategoryUseCase(repo)

	out, err := uc.Execute(context.Background(), dto.CreateCategoryRequest{Name: ""})
	assert.Nil(t, out)
	var verr *domain.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Zero(t, repo.inserts)
}
