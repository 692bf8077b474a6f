package entity

// Estados de Distribucion.
const (
	DistribucionProgramado = "PROGRAMADO"
	DistribucionEnRuta     = "EN_RUTA"
	DistribucionEntregado  = "ENTREGADO"
	DistribucionCancelado  = "CANCELADO"
)

// EstadosDistribucion estados válidos.
var EstadosDistribucion = []string{
	DistribucionProgramado, DistribucionEnRuta, DistribucionEntregado, DistribucionCancelado,
}

// Distribucion vista normalizada de un despacho asociado a un pedido.
// PedidoID es obligatorio al crear y no cambia después.
type Distribucion struct {
	ID             int64   `json:"id"`
	PedidoID       *int64  `json:"pedidoId"`
	Destino        *string `json:"destino"` // direccionEntrega en el backend
	FechaSalida    *string `json:"fechaSalida"`
	FechaEntrega   *string `json:"fechaEntrega"`
	Estado         *string `json:"estado"`
	ChoferNombre   *string `json:"choferNombre"`
	ChoferTelefono *string `json:"choferTelefono"`
	VehiculoPlaca  *string `json:"vehiculoPlaca"`
	VehiculoModelo *string `json:"vehiculoModelo"`
	Observaciones  *string `json:"observaciones"`
}
