package entity

import "github.com/shopspring/decimal"

// Estados de Maquilado.
const (
	MaquiladoPendiente  = "PENDIENTE"
	MaquiladoEnProceso  = "EN_PROCESO"
	MaquiladoFinalizado = "FINALIZADO"
	MaquiladoRecibido   = "RECIBIDO"
	MaquiladoCancelado  = "CANCELADO"
)

// EstadosMaquilado estados válidos.
var EstadosMaquilado = []string{
	MaquiladoPendiente, MaquiladoEnProceso, MaquiladoFinalizado, MaquiladoRecibido, MaquiladoCancelado,
}

// Maquilado orden de fabricación tercerizada.
type Maquilado struct {
	ID                   int64               `json:"id"`
	NumeroOrden          string              `json:"numeroOrden"`
	ProveedorNombre      string              `json:"proveedorNombre"`
	ProveedorRuc         *string             `json:"proveedorRuc"`
	ProveedorContacto    *string             `json:"proveedorContacto"`
	FechaOrden           *string             `json:"fechaOrden"`
	FechaEntregaEstimada *string             `json:"fechaEntregaEstimada"`
	FechaEntregaReal     *string             `json:"fechaEntregaReal"`
	Estado               string              `json:"estado"`
	CostoTotal           decimal.NullDecimal `json:"costoTotal"`
	Observaciones        *string             `json:"observaciones"`
}

// Abierto indica si la orden sigue en curso (ni recibida ni cancelada).
func (m Maquilado) Abierto() bool {
	switch m.Estado {
	case MaquiladoRecibido, MaquiladoCancelado, MaquiladoFinalizado:
		return false
	default:
		return true
	}
}
