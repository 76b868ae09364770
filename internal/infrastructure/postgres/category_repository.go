package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/jhoicas/categorias-api/internal/domain"
	"github.com/jhoicas/categorias-api/internal/domain/entity"
	"github.com/jhoicas/categorias-api/internal/domain/repository"
	"github.com/jhoicas/categorias-api/internal/domain/valueobject"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// bulkInsertBatchSize filas por sentencia INSERT en BulkInsert.
const bulkInsertBatchSize = 500

// CategoryRepo implementación del puerto CategoryRepository sobre gorm.
type CategoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Insert persiste una nueva categoría.
func (r *CategoryRepo) Insert(ctx context.Context, c *entity.Category) error {
	m := CategoryModelFrom(c)
	return wrapError("insert category", r.db.WithContext(ctx).Create(&m).Error)
}

// BulkInsert persiste varias categorías en una sola transacción.
func (r *CategoryRepo) BulkInsert(ctx context.Context, cs []*entity.Category) error {
	if len(cs) == 0 {
		return nil
	}
	models := make([]CategoryModel, 0, len(cs))
	for _, c := range cs {
		models = append(models, CategoryModelFrom(c))
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&models, bulkInsertBatchSize).Error
	})
	return wrapError("bulk insert categories", err)
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	m := CategoryModelFrom(c)
	res := r.db.WithContext(ctx).
		Model(&CategoryModel{}).
		Where("category_id = ?", m.CategoryID).
		Updates(map[string]any{
			"name":        m.Name,
			"description": m.Description,
			"is_active":   m.IsActive,
		})
	if res.Error != nil {
		return wrapError("update category", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update category %s: %w", m.CategoryID, domain.ErrNotFound)
	}
	return nil
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(ctx context.Context, id valueobject.ID) error {
	res := r.db.WithContext(ctx).Where("category_id = ?", id.String()).Delete(&CategoryModel{})
	if res.Error != nil {
		return wrapError("delete category", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete category %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// FindByID obtiene una categoría por ID; (nil, nil) si no existe.
func (r *CategoryRepo) FindByID(ctx context.Context, id valueobject.ID) (*entity.Category, error) {
	var m CategoryModel
	err := r.db.WithContext(ctx).Where("category_id = ?", id.String()).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapError("get category", err)
	}
	return m.ToEntity()
}

// FindAll lista todas las categorías.
func (r *CategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var models []CategoryModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, wrapError("list categories", err)
	}
	return toEntities(models)
}

func (r *CategoryRepo) SortableFields() []string {
	return repository.CategorySortableFields
}

// Search filtra por nombre (sin distinguir mayúsculas), ordena y pagina en la base.
func (r *CategoryRepo) Search(ctx context.Context, params repository.SearchParams) (*repository.CategorySearchResult, error) {
	var total int64
	if err := r.filtered(ctx, params.Filter).Count(&total).Error; err != nil {
		return nil, wrapError("count categories", err)
	}

	var models []CategoryModel
	err := r.filtered(ctx, params.Filter).
		Order(orderBy(r.db.Dialector.Name(), params, r.SortableFields())).
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&models).Error
	if err != nil {
		return nil, wrapError("search categories", err)
	}

	items, err := toEntities(models)
	if err != nil {
		return nil, err
	}
	return repository.NewSearchResult(items, int(total), params.Page, params.PerPage), nil
}

// orderBy arma el ORDER BY sobre una columna permitida o created_at DESC por defecto.
// En PostgreSQL el nombre se compara con COLLATE "C" (orden por bytes, como el repositorio
// en memoria); SQLite ya compara en binario.
func orderBy(dialect string, params repository.SearchParams, sortable []string) string {
	if !params.SortableBy(sortable) {
		return "created_at DESC"
	}
	column := params.Sort
	if column == "name" && dialect == "postgres" {
		column = `name COLLATE "C"`
	}
	if params.SortDir == repository.SortDesc {
		return column + " DESC"
	}
	return column + " ASC"
}

// filtered consulta nueva sobre categories con el filtro por nombre aplicado.
func (r *CategoryRepo) filtered(ctx context.Context, filter string) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&CategoryModel{})
	if filter != "" {
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(filter))+"%")
	}
	return q
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func toEntities(models []CategoryModel) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(models))
	for _, m := range models {
		c, err := m.ToEntity()
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", m.CategoryID, err)
		}
		out = append(out, c)
	}
	return out, nil
}
