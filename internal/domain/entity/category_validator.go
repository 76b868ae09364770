package entity

import (
	"unicode/utf8"

	"github.com/jhoicas/categorias-api/internal/domain"
)

// CategoryNameMaxLength longitud máxima del nombre en caracteres.
const CategoryNameMaxLength = 255

// ValidateCategory revisa las reglas de la categoría y devuelve un *domain.ValidationError
// con todas las reglas violadas, o nil si es válida.
func ValidateCategory(c *Category) error {
	var errs []domain.FieldError
	if c.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "name should not be empty"})
	}
	if utf8.RuneCountInString(c.Name) > CategoryNameMaxLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "name must be shorter than or equal to 255 characters"})
	}
	if c.ID.IsZero() {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "category_id should not be empty"})
	}
	if c.CreatedAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "created_at", Message: "created_at should not be empty"})
	}
	if len(errs) > 0 {
		return domain.NewValidationError(errs)
	}
	return nil
}
