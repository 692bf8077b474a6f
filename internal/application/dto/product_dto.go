package dto

import "github.com/shopspring/decimal"

// ProductoUpsert campos aceptados por POST/PUT /api/productos.
type ProductoUpsert struct {
	Nombre       string          `json:"nombre" validate:"required,max=200"`
	Descripcion  *string         `json:"descripcion,omitempty"`
	Presentacion *string         `json:"presentacion,omitempty"`
	Stock        int64           `json:"stock" validate:"gte=0"`
	Precio       decimal.Decimal `json:"precio"`
	Activo       *bool           `json:"activo,omitempty"`
}
