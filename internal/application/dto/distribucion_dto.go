package dto

// DistribucionUpsert entrada de crear/editar distribución. PedidoID solo se usa al
// crear (viaja como query param); al editar nunca se envía.
type DistribucionUpsert struct {
	PedidoID         *int64  `json:"pedidoId"`
	DireccionEntrega *string `json:"direccionEntrega"`
	FechaSalida      *string `json:"fechaSalida"` // "YYYY-MM-DD" o ISO completo
	FechaEntrega     *string `json:"fechaEntrega"`
	Estado           *string `json:"estado" validate:"omitempty,oneof=PROGRAMADO EN_RUTA ENTREGADO CANCELADO"`
	ChoferNombre     *string `json:"choferNombre"`
	ChoferTelefono   *string `json:"choferTelefono"`
	VehiculoPlaca    *string `json:"vehiculoPlaca"`
	VehiculoModelo   *string `json:"vehiculoModelo"`
	Observaciones    *string `json:"observaciones"`
}
