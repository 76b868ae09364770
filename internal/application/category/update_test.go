package category_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/categorias-api/internal/application/category"
	"github.com/jhoicas/categorias-api/internal/application/dto"
	"github.com/jhoicas/categorias-api/internal/domain"
	"github.com/jhoicas/categorias-api/internal/domain/entity"
	"github.com/jhoicas/categorias-api/internal/domain/valueobject"
)

func TestUpdateCategory_NoEncontrada(t *testing.T) {
	repo := newSpyRepository()
	uc := category.NewUpdateCategoryUseCase(repo)

	_, err := uc.Execute(context.Background(), "afedde72-6d85-4e33-b12d-611d8c7c7fab", dto.UpdateCategoryRequest{
		Name:     ptr("Category Test"),
		IsActive: ptr(true),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, repo.updates)
}

func TestUpdateCategory_IDInvalido(t *testing.T) {
	uc := category.NewUpdateCategoryUseCase(newSpyRepository())
	_, err := uc.Execute(context.Background(), "fake id", dto.UpdateCategoryRequest{Name: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestUpdateCategory_NombreVacio(t *testing.T) {
	repo := newSpyRepository()
	uc := category.NewUpdateCategoryUseCase(repo)
	c := seedCategory(t, repo, "Movie", entity.Now())

	_, err := uc.Execute(context.Background(), c.ID.String(), dto.UpdateCategoryRequest{Name: ptr("")})
	var verr *domain.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Zero(t, repo.updates)

	got, err := category.NewGetCategoryUseCase(repo).Execute(context.Background(), c.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Movie", got.Name, "una actualización rechazada no modifica la categoría guardada")
}

// Con el nombre inválido tampoco se aplican los demás campos de la petición.
func TestUpdateCategory_RechazoParcialNoPersiste(t *testing.T) {
	repo := newSpyRepository()
	uc := category.NewUpdateCategoryUseCase(repo)
	c := seedCategory(t, repo, "Movie", entity.Now())

	_, err := uc.Execute(context.Background(), c.ID.String(), dto.UpdateCategoryRequest{
		Name:        ptr(strings.Repeat("a", entity.CategoryNameMaxLength+1)),
		Description: dto.NewNullableString(ptr("nueva")),
		IsActive:    ptr(false),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	stored, err := repo.FindByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Movie", stored.Name)
	assert.Nil(t, stored.Description)
	assert.True(t, stored.IsActive)
}

// Secuencia de actualizaciones parciales sobre la misma categoría: cada paso parte del
// estado dejado por el anterior.
func TestUpdateCategory_Parciales(t *testing.T) {
	repo := newSpyRepository()
	uc := category.NewUpdateCategoryUseCase(repo)
	c := seedCategory(t, repo, "Movie", entity.Now())
	id := c.ID.String()

	steps := []struct {
		in       dto.UpdateCategoryRequest
		wantName string
		wantDesc *string
		wantAct  bool
	}{
		{dto.UpdateCategoryRequest{Name: ptr("test")}, "test", nil, true},
		{dto.UpdateCategoryRequest{Name: ptr("test"), Description: dto.NewNullableString(ptr("some description"))}, "test", ptr("some description"), true},
		{dto.UpdateCategoryRequest{Name: ptr("test")}, "test", ptr("some description"), true},
		{dto.UpdateCategoryRequest{Name: ptr("test"), IsActive: ptr(false)}, "test", ptr("some description"), false},
		{dto.UpdateCategoryRequest{Name: ptr("test")}, "test", ptr("some description"), false},
		{dto.UpdateCategoryRequest{Name: ptr("test"), IsActive: ptr(true)}, "test", ptr("some description"), true},
		{dto.UpdateCategoryRequest{IsActive: ptr(false)}, "test", ptr("some description"), false},
		{dto.UpdateCategoryRequest{Description: dto.NewNullableString(nil)}, "test", nil, false},
	}
	for i, step := range steps {
		out, err := uc.Execute(context.Background(), id, step.in)
		require.NoError(t, err, "paso %d", i)
		assert.Equal(t, &dto.CategoryResponse{
			ID:          id,
			Name:        step.wantName,
			Description: step.wantDesc,
			IsActive:    step.wantAct,
			CreatedAt:   c.CreatedAt,
		}, out, "paso %d", i)
	}
	assert.Equal(t, len(steps), repo.updates)

	stored, err := repo.FindByID(context.Background(), valueobject.MustParseID(id))
	require.NoError(t, err)
	assert.Equal(t, "test", stored.Name)
	assert.Nil(t, stored.Description)
	assert.False(t, stored.IsActive)
}
