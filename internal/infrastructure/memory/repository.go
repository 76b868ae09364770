// Package memory implementa los repositorios del dominio sobre slices en memoria.
// No es seguro para mutaciones concurrentes; se usa en tests y en REPOSITORY_DRIVER=memory.
package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/jhoicas/categorias-api/internal/domain"
	"github.com/jhoicas/categorias-api/internal/domain/valueobject"
)

// Entity cualquier entidad con identidad.
type Entity interface {
	EntityID() valueobject.ID
}

// Repository almacén genérico en orden de inserción.
type Repository[E Entity] struct {
	items []E
}

// Insert agrega la entidad al final.
func (r *Repository[E]) Insert(_ context.Context, e E) error {
	r.items = append(r.items, e)
	return nil
}

// BulkInsert agrega las entidades conservando su orden.
func (r *Repository[E]) BulkInsert(_ context.Context, es []E) error {
	r.items = append(r.items, es...)
	return nil
}

// Update reemplaza la entidad con el mismo ID.
func (r *Repository[E]) Update(_ context.Context, e E) error {
	i := r.indexOf(e.EntityID())
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, e.EntityID())
	}
	r.items[i] = e
	return nil
}

// Delete elimina la entidad por ID.
func (r *Repository[E]) Delete(_ context.Context, id valueobject.ID) error {
	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	r.items = slices.Delete(r.items, i, i+1)
	return nil
}

// FindByID devuelve la entidad o el valor cero de E y false.
func (r *Repository[E]) FindByID(_ context.Context, id valueobject.ID) (E, bool) {
	i := r.indexOf(id)
	if i < 0 {
		var zero E
		return zero, false
	}
	return r.items[i], true
}

// FindAll devuelve una copia de todas las entidades.
func (r *Repository[E]) FindAll(_ context.Context) []E {
	return slices.Clone(r.items)
}

// Items copia del contenido actual, en orden de inserción.
func (r *Repository[E]) Items() []E {
	return slices.Clone(r.items)
}

func (r *Repository[E]) indexOf(id valueobject.ID) int {
	return slices.IndexFunc(r.items, func(e E) bool {
		return e.EntityID().Equals(id)
	})
}
