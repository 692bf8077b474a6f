package dto

import "github.com/shopspring/decimal"

// MaquiladoUpsert campos aceptados por POST/PUT /api/maquilados.
type MaquiladoUpsert struct {
	NumeroOrden          *string             `json:"numeroOrden"`
	ProveedorNombre      *string             `json:"proveedorNombre"`
	ProveedorRuc         *string             `json:"proveedorRuc"`
	ProveedorContacto    *string             `json:"proveedorContacto"`
	FechaOrden           *string             `json:"fechaOrden"`
	FechaEntregaEstimada *string             `json:"fechaEntregaEstimada"`
	FechaEntregaReal     *string             `json:"fechaEntregaReal"`
	Estado               *string             `json:"estado"`
	CostoTotal           decimal.NullDecimal `json:"costoTotal"`
	Observaciones        *string             `json:"observaciones"`
}
