package dto

import "github.com/lecoq/erp-admin/internal/domain/entity"

// DashboardSummary resumen de la operación para la página de inicio.
// Los conteos de una sección quedan en nil si su listado falló o el rol no lo puede ver.
type DashboardSummary struct {
	ProductosActivos      *int              `json:"productos_activos"`
	ProductosBajoStock    []entity.Producto `json:"productos_bajo_stock"`
	PedidosHoy            *int              `json:"pedidos_hoy"`
	UltimosPedidos        []entity.Pedido   `json:"ultimos_pedidos"`
	DistribucionesEnCurso *int              `json:"distribuciones_en_curso"`
	MaquiladosAbiertos    *int              `json:"maquilados_abiertos"`
	Errores               []string          `json:"errores,omitempty"`
}
