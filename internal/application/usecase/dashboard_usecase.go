package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/lecoq/erp-admin/internal/application/access"
	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/application/ports"
	"github.com/lecoq/erp-admin/internal/domain/entity"
	"github.com/lecoq/erp-admin/pkg/dates"
)

// ultimosPedidosN cantidad de pedidos recientes en el resumen.
const ultimosPedidosN = 5

// DashboardUseCase arma el resumen de la página de inicio. Cada sección se consulta
// solo si el rol tiene acceso a ella; un listado que falla deja su sección vacía y
// agrega el mensaje a Errores sin invalidar el resto.
type DashboardUseCase struct {
	productos      ports.ProductoRepository
	pedidos        ports.PedidoRepository
	distribuciones ports.DistribucionRepository
	maquilados     ports.MaquiladoRepository
	now            func() time.Time
	describe       func(err error, fallback string) string
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productos ports.ProductoRepository,
	pedidos ports.PedidoRepository,
	distribuciones ports.DistribucionRepository,
	maquilados ports.MaquiladoRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		productos:      productos,
		pedidos:        pedidos,
		distribuciones: distribuciones,
		maquilados:     maquilados,
		now:            time.Now,
		describe: func(err error, _ string) string {
			return err.Error()
		},
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// WithErrorDescriber define cómo se muestran los errores de cada sección.
func (uc *DashboardUseCase) WithErrorDescriber(f func(err error, fallback string) string) *DashboardUseCase {
	uc.describe = f
	return uc
}

// Summary consulta en paralelo los listados visibles para role.
func (uc *DashboardUseCase) Summary(ctx context.Context, role string) (*dto.DashboardSummary, error) {
	type productosResult struct {
		rows []entity.Producto
		err  error
	}
	type pedidosResult struct {
		rows []entity.Pedido
		err  error
	}
	type distribucionesResult struct {
		rows []entity.Distribucion
		err  error
	}
	type maquiladosResult struct {
		rows []entity.Maquilado
		err  error
	}

	var (
		prodChan chan productosResult
		pedChan  chan pedidosResult
		distChan chan distribucionesResult
		maqChan  chan maquiladosResult
	)

	if access.RoleCanSee(role, access.RouteProductos) {
		prodChan = make(chan productosResult, 1)
		go func() {
			rows, err := uc.productos.List(ctx)
			prodChan <- productosResult{rows, err}
		}()
	}
	if access.RoleCanSee(role, access.RoutePedidos) {
		pedChan = make(chan pedidosResult, 1)
		go func() {
			rows, err := uc.pedidos.List(ctx)
			pedChan <- pedidosResult{rows, err}
		}()
	}
	if access.RoleCanSee(role, access.RouteDistribuciones) {
		distChan = make(chan distribucionesResult, 1)
		go func() {
			rows, err := uc.distribuciones.List(ctx)
			distChan <- distribucionesResult{rows, err}
		}()
	}
	if access.RoleCanSee(role, access.RouteMaquilados) {
		maqChan = make(chan maquiladosResult, 1)
		go func() {
			rows, err := uc.maquilados.List(ctx)
			maqChan <- maquiladosResult{rows, err}
		}()
	}

	out := &dto.DashboardSummary{
		ProductosBajoStock: []entity.Producto{},
		UltimosPedidos:     []entity.Pedido{},
	}

	if prodChan != nil {
		res := <-prodChan
		if res.err != nil {
			out.Errores = append(out.Errores, "Productos: "+uc.describe(res.err, "No se pudo cargar."))
		} else {
			activos := 0
			for _, p := range res.rows {
				if p.Activo() {
					activos++
				}
			}
			out.ProductosActivos = &activos
			out.ProductosBajoStock = lowStock(res.rows)
		}
	}
	if pedChan != nil {
		res := <-pedChan
		if res.err != nil {
			out.Errores = append(out.Errores, "Pedidos: "+uc.describe(res.err, "No se pudo cargar."))
		} else {
			hoy := uc.now().Format(dates.CalendarLayout)
			n := 0
			for _, p := range res.rows {
				if dates.ToCalendarDate(p.Fecha) == hoy {
					n++
				}
			}
			out.PedidosHoy = &n
			out.UltimosPedidos = ultimosPedidos(res.rows, ultimosPedidosN)
		}
	}
	if distChan != nil {
		res := <-distChan
		if res.err != nil {
			out.Errores = append(out.Errores, "Distribuciones: "+uc.describe(res.err, "No se pudo cargar."))
		} else {
			n := 0
			for _, d := range res.rows {
				if enCurso(d) {
					n++
				}
			}
			out.DistribucionesEnCurso = &n
		}
	}
	if maqChan != nil {
		res := <-maqChan
		if res.err != nil {
			out.Errores = append(out.Errores, "Maquilados: "+uc.describe(res.err, "No se pudo cargar."))
		} else {
			n := 0
			for _, m := range res.rows {
				if m.Abierto() {
					n++
				}
			}
			out.MaquiladosAbiertos = &n
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ultimosPedidos los n pedidos con fecha más reciente; sin fecha van al final.
func ultimosPedidos(rows []entity.Pedido, n int) []entity.Pedido {
	sorted := append(make([]entity.Pedido, 0, len(rows)), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return deref(sorted[i].Fecha) > deref(sorted[j].Fecha)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
