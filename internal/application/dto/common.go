package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// DataResponse envoltura de un recurso individual.
type DataResponse[T any] struct {
	Data T `json:"data"`
}

// PaginationMeta metadatos de página en respuestas de colección.
type PaginationMeta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	LastPage    int `json:"last_page"`
	Total       int `json:"total"`
}

// CollectionResponse envoltura de una página de recursos.
type CollectionResponse[T any] struct {
	Data []T           `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// PaginationOutput página producida por un caso de uso de listado.
type PaginationOutput[T any] struct {
	Items       []T `json:"items"`
	Total       int `json:"total"`
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	LastPage    int `json:"last_page"`
}

// Collection convierte la página en la respuesta HTTP con data + meta.
func (p *PaginationOutput[T]) Collection() CollectionResponse[T] {
	items := p.Items
	if items == nil {
		items = []T{}
	}
	return CollectionResponse[T]{
		Data: items,
		Meta: PaginationMeta{
			CurrentPage: p.CurrentPage,
			PerPage:     p.PerPage,
			LastPage:    p.LastPage,
			Total:       p.Total,
		},
	}
}
