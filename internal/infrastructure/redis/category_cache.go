// Package redis contiene la caché de lecturas de categorías sobre Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/categorias-api/internal/domain/entity"
	"github.com/jhoicas/categorias-api/internal/domain/repository"
	"github.com/jhoicas/categorias-api/internal/domain/valueobject"
	"github.com/jhoicas/categorias-api/pkg/logger"
)

var _ repository.CategoryRepository = (*CachedCategoryRepository)(nil)

const categoryKeyPrefix = "category:"

// categoryCacheModel representación JSON guardada en Redis.
type categoryCacheModel struct {
	CategoryID  string    `json:"category_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CachedCategoryRepository decora un CategoryRepository con caché read-through en FindByID.
// Los fallos de Redis se registran y nunca hacen fallar la operación.
type CachedCategoryRepository struct {
	next   repository.CategoryRepository
	client *goredis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewCachedCategoryRepository construye el decorador.
func NewCachedCategoryRepository(next repository.CategoryRepository, client *goredis.Client, ttl time.Duration, log *logger.Logger) *CachedCategoryRepository {
	return &CachedCategoryRepository{
		next:   next,
		client: client,
		ttl:    ttl,
		log:    log.Component("category-cache"),
	}
}

// Insert persiste y guarda la categoría en caché.
func (r *CachedCategoryRepository) Insert(ctx context.Context, c *entity.Category) error {
	if err := r.next.Insert(ctx, c); err != nil {
		return err
	}
	r.set(ctx, c)
	return nil
}

func (r *CachedCategoryRepository) BulkInsert(ctx context.Context, cs []*entity.Category) error {
	return r.next.BulkInsert(ctx, cs)
}

// Update persiste e invalida la entrada.
func (r *CachedCategoryRepository) Update(ctx context.Context, c *entity.Category) error {
	err := r.next.Update(ctx, c)
	r.invalidate(ctx, c.ID)
	return err
}

// Delete elimina e invalida la entrada.
func (r *CachedCategoryRepository) Delete(ctx context.Context, id valueobject.ID) error {
	err := r.next.Delete(ctx, id)
	r.invalidate(ctx, id)
	return err
}

// FindByID consulta Redis y, en un fallo de caché, el repositorio decorado.
func (r *CachedCategoryRepository) FindByID(ctx context.Context, id valueobject.ID) (*entity.Category, error) {
	if c, ok := r.get(ctx, id); ok {
		return c, nil
	}
	c, err := r.next.FindByID(ctx, id)
	if err != nil || c == nil {
		return c, err
	}
	r.set(ctx, c)
	return c, nil
}

func (r *CachedCategoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	return r.next.FindAll(ctx)
}

func (r *CachedCategoryRepository) Search(ctx context.Context, params repository.SearchParams) (*repository.CategorySearchResult, error) {
	return r.next.Search(ctx, params)
}

func (r *CachedCategoryRepository) SortableFields() []string {
	return r.next.SortableFields()
}

func (r *CachedCategoryRepository) get(ctx context.Context, id valueobject.ID) (*entity.Category, bool) {
	data, err := r.client.Get(ctx, categoryKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			r.log.Warn().Err(err).Str("id", id.String()).Msg("redis GET falló")
		}
		return nil, false
	}

	var m categoryCacheModel
	if err := json.Unmarshal(data, &m); err != nil {
		r.log.Warn().Err(err).Str("id", id.String()).Msg("entrada de caché corrupta")
		r.invalidate(ctx, id)
		return nil, false
	}
	c, err := fromCacheModel(m)
	if err != nil || !c.ID.Equals(id) {
		r.log.Warn().Err(err).Str("id", id.String()).Msg("entrada de caché inválida")
		r.invalidate(ctx, id)
		return nil, false
	}
	return c, true
}

func (r *CachedCategoryRepository) set(ctx context.Context, c *entity.Category) {
	data, err := json.Marshal(toCacheModel(c))
	if err != nil {
		r.log.Warn().Err(err).Str("id", c.ID.String()).Msg("serializar categoría para caché")
		return
	}
	if err := r.client.Set(ctx, categoryKey(c.ID), data, r.ttl).Err(); err != nil {
		r.log.Warn().Err(err).Str("id", c.ID.String()).Msg("redis SET falló")
	}
}

func (r *CachedCategoryRepository) invalidate(ctx context.Context, id valueobject.ID) {
	if err := r.client.Del(ctx, categoryKey(id)).Err(); err != nil {
		r.log.Warn().Err(err).Str("id", id.String()).Msg("redis DEL falló")
	}
}

func categoryKey(id valueobject.ID) string {
	return categoryKeyPrefix + id.String()
}

func toCacheModel(c *entity.Category) categoryCacheModel {
	return categoryCacheModel{
		CategoryID:  c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

func fromCacheModel(m categoryCacheModel) (*entity.Category, error) {
	id, err := valueobject.ParseID(m.CategoryID)
	if err != nil {
		return nil, err
	}
	return entity.RestoreCategory(entity.CategoryProps{
		ID:          id,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt.UTC(),
	})
}
