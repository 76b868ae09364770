// Package valueobject contiene los objetos de valor del dominio: inmutables y
// comparables por valor.
package valueobject

// Equal compara dos objetos de valor por su contenido.
func Equal[T comparable](a, b T) bool {
	return a == b
}
