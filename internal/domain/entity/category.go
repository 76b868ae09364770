package entity

import (
	"time"

	"github.com/jhoicas/categorias-api/internal/domain/valueobject"
)

// Category agregado del catálogo: nombre, descripción opcional y estado activo.
type Category struct {
	ID          valueobject.ID
	Name        string
	Description *string // nil si no tiene descripción
	IsActive    bool
	CreatedAt   time.Time
}

// CategoryProps atributos de una categoría ya persistida.
type CategoryProps struct {
	ID          valueobject.ID
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
}

// CreateCategoryCommand datos para crear una categoría nueva.
// Description nil y IsActive nil toman los valores por defecto (sin descripción, activa).
type CreateCategoryCommand struct {
	Name        string
	Description *string
	IsActive    *bool
}

// CategorySnapshot representación plana para serialización.
type CategorySnapshot struct {
	CategoryID  string    `json:"category_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewCategory crea una categoría con ID y fecha de creación nuevos y la valida.
func NewCategory(cmd CreateCategoryCommand) (*Category, error) {
	isActive := true
	if cmd.IsActive != nil {
		isActive = *cmd.IsActive
	}
	c := &Category{
		ID:          valueobject.NewID(),
		Name:        cmd.Name,
		Description: cmd.Description,
		IsActive:    isActive,
		CreatedAt:   Now(),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreCategory reconstruye una categoría persistida y la valida.
func RestoreCategory(p CategoryProps) (*Category, error) {
	c := &Category{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// EntityID identidad de la categoría.
func (c *Category) EntityID() valueobject.ID { return c.ID }

// ChangeName renombra y revalida.
func (c *Category) ChangeName(name string) error {
	c.Name = name
	return c.Validate()
}

// ChangeDescription cambia la descripción (nil la elimina) y revalida.
func (c *Category) ChangeDescription(description *string) error {
	c.Description = description
	return c.Validate()
}

func (c *Category) Activate() { c.IsActive = true }

func (c *Category) Deactivate() { c.IsActive = false }

// Validate aplica las reglas de la categoría; devuelve *domain.ValidationError si alguna falla.
func (c *Category) Validate() error {
	return ValidateCategory(c)
}

// ToJSON devuelve una copia plana de la categoría.
func (c *Category) ToJSON() CategorySnapshot {
	return CategorySnapshot{
		CategoryID:  c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

// Now hora actual en UTC con precisión de milisegundos (la misma que guarda la base).
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
