package category_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/categorias-api/internal/domain/entity"
	"github.com/jhoicas/categorias-api/internal/domain/valueobject"
	"github.com/jhoicas/categorias-api/internal/infrastructure/memory"
)

// spyRepository cuenta las llamadas a Update e Insert sobre el repositorio en memoria.
type spyRepository struct {
	*memory.CategoryRepository
	inserts int
	updates int
}

func newSpyRepository() *spyRepository {
	return &spyRepository{CategoryRepository: memory.NewCategoryRepository()}
}

func (s *spyRepository) Insert(ctx context.Context, c *entity.Category) error {
	s.inserts++
	return s.CategoryRepository.Insert(ctx, c)
}

func (s *spyRepository) Update(ctx context.Context, c *entity.Category) error {
	s.updates++
	return s.CategoryRepository.Update(ctx, c)
}

func ptr[T any](v T) *T { return &v }

func seedCategory(t *testing.T, repo *spyRepository, name string, createdAt time.Time) *entity.Category {
	t.Helper()
	c, err := entity.RestoreCategory(entity.CategoryProps{
		ID:        valueobject.NewID(),
		Name:      name,
		IsActive:  true,
		CreatedAt: createdAt,
	})
	require.NoError(t, err)
	require.NoError(t, repo.CategoryRepository.Insert(context.Background(), c))
	return c
}
