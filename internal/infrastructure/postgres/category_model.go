package postgres

import (
	"time"

	"github.com/jhoicas/categorias-api/internal/domain/entity"
	"github.com/jhoicas/categorias-api/internal/domain/valueobject"
)

// CategoryModel fila de la tabla categories.
type CategoryModel struct {
	CategoryID  string    `gorm:"column:category_id;type:uuid;primaryKey"`
	Name        string    `gorm:"column:name;size:255;not null"`
	Description *string   `gorm:"column:description;type:text"`
	IsActive    bool      `gorm:"column:is_active;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;precision:3;not null;autoCreateTime:false"`
}

// TableName nombre de la tabla para gorm.
func (CategoryModel) TableName() string { return "categories" }

// CategoryModelFrom convierte la entidad en fila.
func CategoryModelFrom(c *entity.Category) CategoryModel {
	return CategoryModel{
		CategoryID:  c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt.UTC(),
	}
}

// ToEntity reconstruye la entidad validando ID y reglas.
func (m CategoryModel) ToEntity() (*entity.Category, error) {
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
