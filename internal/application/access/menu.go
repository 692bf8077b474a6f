package access

import "github.com/lecoq/erp-admin/internal/domain/entity"

// MenuItem entrada del menú lateral.
type MenuItem struct {
	To    string `json:"to"`
	Label string `json:"label"`
}

var menus = map[string][]MenuItem{
	entity.RoleAdmin: {
		{To: RouteHome, Label: "Dashboard"},
		{To: RouteProductos, Label: "Productos"},
		{To: RoutePedidos, Label: "Pedidos"},
		{To: RouteDistribuciones, Label: "Distribuciones"},
		{To: RouteMaquilados, Label: "Maquilados"},
		{To: RouteUsuarios, Label: "Usuarios"},
	},
	entity.RoleVentas: {
		{To: RouteHome, Label: "Dashboard"},
		{To: RoutePedidos, Label: "Pedidos"},
		{To: RouteProductos, Label: "Productos"},
	},
	entity.RoleMaquila: {
		{To: RouteHome, Label: "Dashboard"},
		{To: RouteMaquilados, Label: "Maquilados"},
	},
}

// MenuFor menú del rol; vacío para roles desconocidos. Devuelve una copia.
func MenuFor(role string) []MenuItem {
	return append([]MenuItem{}, menus[role]...)
}
