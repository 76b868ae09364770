package valueobject

import (
	"github.com/google/uuid"
	"github.com/jhoicas/categorias-api/internal/domain"
)

// ID identificador de entidad con sintaxis UUID garantizada.
type ID struct {
	value string
}

// NewID genera un UUID v4 aleatorio.
func NewID() ID {
	return ID{value: uuid.NewString()}
}

// ParseID valida s y devuelve domain.ErrInvalidID si no es un UUID RFC 4122 de versión 1 a 8
// en forma canónica de 36 caracteres. El UUID nulo también se acepta.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, domain.ErrInvalidID
	}
	// uuid.Parse acepta también las formas con llaves y urn:uuid:
	if len(s) != 36 {
		return ID{}, domain.ErrInvalidID
	}
	if u != uuid.Nil && (u.Version() < 1 || u.Version() > 8 || u.Variant() != uuid.RFC4122) {
		return ID{}, domain.ErrInvalidID
	}
	return ID{value: u.String()}, nil
}

// MustParseID es ParseID para constantes conocidas; entra en pánico si s no es válido.
func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ID) String() string { return id.value }

// IsZero indica si el ID no fue inicializado.
func (id ID) IsZero() bool { return id.value == "" }

// Equals compara por valor.
func (id ID) Equals(other ID) bool {
	return Equal(id, other)
}
