package dto

// PageSize tamaño de página de todos los listados del cliente.
const PageSize = 8

// ListQuery búsqueda y paginación del lado del cliente.
type ListQuery struct {
	Q      string `query:"q"`
	Page   int    `query:"page"`
	Estado string `query:"estado"` // solo lo usan los listados que filtran por estado
}

// Page resultado paginado de un listado ya filtrado.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"` // resultados tras el filtro
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
