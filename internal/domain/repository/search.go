package repository

import (
	"slices"
	"strings"
)

// SortDirection dirección de ordenamiento.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Valores por defecto de paginación.
const (
	DefaultPage    = 1
	DefaultPerPage = 15
)

// SearchInput parámetros de búsqueda tal como llegan del exterior (sin normalizar).
type SearchInput struct {
	Page    int
	PerPage int
	Sort    string
	SortDir string
	Filter  string
}

// SearchParams parámetros de búsqueda normalizados.
type SearchParams struct {
	Page    int
	PerPage int
	Sort    string        // vacío = orden por defecto del repositorio
	SortDir SortDirection // vacío si Sort está vacío
	Filter  string        // vacío = sin filtro
}

// NewSearchParams normaliza la entrada: página y tamaño positivos, dirección asc|desc.
func NewSearchParams(in SearchInput) SearchParams {
	p := SearchParams{
		Page:    in.Page,
		PerPage: in.PerPage,
		Sort:    strings.TrimSpace(in.Sort),
		Filter:  strings.TrimSpace(in.Filter),
	}
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.Sort != "" {
		switch dir := SortDirection(strings.ToLower(strings.TrimSpace(in.SortDir))); dir {
		case SortAsc, SortDesc:
			p.SortDir = dir
		default:
			p.SortDir = SortAsc
		}
	}
	return p
}

// Offset posición del primer elemento de la página.
func (p SearchParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// SortableBy indica si Sort pertenece a la lista de campos permitidos.
func (p SearchParams) SortableBy(fields []string) bool {
	return p.Sort != "" && slices.Contains(fields, p.Sort)
}

// SearchResult página de resultados con sus metadatos.
type SearchResult[E any] struct {
	Items       []E
	Total       int
	CurrentPage int
	PerPage     int
	LastPage    int
}

// NewSearchResult calcula LastPage = ceil(total/perPage).
func NewSearchResult[E any](items []E, total, currentPage, perPage int) *SearchResult[E] {
	lastPage := 0
	if perPage > 0 {
		lastPage = (total + perPage - 1) / perPage
	}
	if items == nil {
		items = []E{}
	}
	return &SearchResult[E]{
		Items:       items,
		Total:       total,
		CurrentPage: currentPage,
		PerPage:     perPage,
		LastPage:    lastPage,
	}
}
