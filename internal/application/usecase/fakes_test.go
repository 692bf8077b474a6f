package usecase_test

import (
	"context"
	"sync"

	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

// calls cuenta llamadas de escritura; las validaciones locales deben dejarlo en 0.
type calls struct {
	mu     sync.Mutex
	writes int
}

func (c *calls) write() {
	c.mu.Lock()
	c.writes++
	c.mu.Unlock()
}

func (c *calls) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writes
}

type productoRepo struct {
	calls
	items   []entity.Producto
	err     error
	created []dto.ProductoUpsert
}

func (r *productoRepo) List(context.Context) ([]entity.Producto, error) { return r.items, r.err }
func (r *productoRepo) GetByID(_ context.Context, id int64) (*entity.Producto, error) {
	for _, p := range r.items {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return &entity.Producto{}, r.err
}
func (r *productoRepo) Create(_ context.Context, in dto.ProductoUpsert) (any, error) {
	r.write()
	r.created = append(r.created, in)
	return map[string]any{"ok": true}, nil
}
func (r *productoRepo) Update(context.Context, int64, dto.ProductoUpsert) (any, error) {
	r.write()
	return nil, nil
}
func (r *productoRepo) Delete(context.Context, int64) (any, error) {
	r.write()
	return nil, nil
}

type pedidoRepo struct {
	calls
	items    []entity.Pedido
	pedido   *entity.Pedido
	detalles []entity.DetallePedido
	err      error
	created  []dto.PedidoUpsert
}

func (r *pedidoRepo) List(context.Context) ([]entity.Pedido, error) { return r.items, r.err }
func (r *pedidoRepo) GetByID(context.Context, int64) (*entity.Pedido, error) {
	if r.pedido == nil {
		return &entity.Pedido{Numero: "-", Cliente: "-", Estado: "-", Detalles: []entity.DetallePedido{}}, r.err
	}
	p := *r.pedido
	return &p, r.err
}
func (r *pedidoRepo) Detalles(context.Context, int64) ([]entity.DetallePedido, error) {
	return r.detalles, nil
}
func (r *pedidoRepo) Create(_ context.Context, in dto.PedidoUpsert) (any, error) {
	r.write()
	r.created = append(r.created, in)
	return nil, nil
}
func (r *pedidoRepo) Update(context.Context, int64, dto.PedidoUpsert) (any, error) {
	r.write()
	return nil, nil
}

type distribucionRepo struct {
	calls
	items   []entity.Distribucion
	err     error
	created []dto.DistribucionUpsert
	updated []dto.DistribucionUpsert
}

func (r *distribucionRepo) List(context.Context) ([]entity.Distribucion, error) {
	return r.items, r.err
}
func (r *distribucionRepo) GetByID(context.Context, int64) (*entity.Distribucion, error) {
	return &entity.Distribucion{}, nil
}
func (r *distribucionRepo) Create(_ context.Context, in dto.DistribucionUpsert) (any, error) {
	r.write()
	r.created = append(r.created, in)
	return nil, nil
}
func (r *distribucionRepo) Update(_ context.Context, _ int64, in dto.DistribucionUpsert) (any, error) {
	r.write()
	r.updated = append(r.updated, in)
	return nil, nil
}
func (r *distribucionRepo) Delete(context.Context, int64) (any, error) {
	r.write()
	return nil, nil
}

type maquiladoRepo struct {
	calls
	items    []entity.Maquilado
	byNumero *entity.Maquilado
	err      error
	estado   string
}

func (r *maquiladoRepo) List(context.Context) ([]entity.Maquilado, error) { return r.items, r.err }
func (r *maquiladoRepo) GetByID(context.Context, int64) (*entity.Maquilado, error) {
	return &entity.Maquilado{}, nil
}
func (r *maquiladoRepo) FindByNumero(context.Context, string) (*entity.Maquilado, error) {
	return r.byNumero, nil
}
func (r *maquiladoRepo) ListByEstado(_ context.Context, estado string) ([]entity.Maquilado, error) {
	r.estado = estado
	return r.items, nil
}
func (r *maquiladoRepo) Create(context.Context, dto.MaquiladoUpsert) (any, error) {
	r.write()
	return nil, nil
}
func (r *maquiladoRepo) Update(context.Context, int64, dto.MaquiladoUpsert) (any, error) {
	r.write()
	return nil, nil
}
func (r *maquiladoRepo) Delete(context.Context, int64) (any, error) {
	r.write()
	return nil, nil
}

type usuarioRepo struct {
	calls
	items   []entity.Usuario
	created []dto.UsuarioCreate
}

func (r *usuarioRepo) List(context.Context) ([]entity.Usuario, error) { return r.items, nil }
func (r *usuarioRepo) Create(_ context.Context, in dto.UsuarioCreate) (any, error) {
	r.write()
	r.created = append(r.created, in)
	return nil, nil
}

func ptr[T any](v T) *T { return &v }
