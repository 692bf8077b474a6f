package usecase

import (
	"context"
	"strings"

	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/application/ports"
	"github.com/lecoq/erp-admin/internal/domain"
	"github.com/lecoq/erp-admin/internal/domain/entity"
)

// DistribucionUseCase despachos de pedidos.
type DistribucionUseCase struct {
	repo ports.DistribucionRepository
}

// NewDistribucionUseCase construye el caso de uso.
func NewDistribucionUseCase(repo ports.DistribucionRepository) *DistribucionUseCase {
	return &DistribucionUseCase{repo: repo}
}

// List distribuciones con búsqueda y paginación locales.
func (uc *DistribucionUseCase) List(ctx context.Context, q dto.ListQuery) (*dto.Page[entity.Distribucion], error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	page := Paginate(Filter(items, q.Q, distribucionSearchFields), q.Page)
	return &page, nil
}

// GetByID obtiene una distribución.
func (uc *DistribucionUseCase) GetByID(ctx context.Context, id int64) (*entity.Distribucion, error) {
	return uc.repo.GetByID(ctx, id)
}

// Create exige pedido y fecha de salida antes de llamar al backend.
func (uc *DistribucionUseCase) Create(ctx context.Context, in dto.DistribucionUpsert) (any, error) {
	if in.PedidoID == nil {
		return nil, domain.NewValidationError("pedidoId", "Pedido (ID) es obligatorio.")
	}
	if blank(in.FechaSalida) {
		return nil, domain.NewValidationError("fechaSalida", "Fecha de salida es obligatoria.")
	}
	in = normalizeDistribucion(in)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, in)
}

// Update actualiza una distribución; el pedido asociado no se puede cambiar.
func (uc *DistribucionUseCase) Update(ctx context.Context, id int64, in dto.DistribucionUpsert) (any, error) {
	in.PedidoID = nil
	in = normalizeDistribucion(in)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	return uc.repo.Update(ctx, id, in)
}

// Delete elimina una distribución.
func (uc *DistribucionUseCase) Delete(ctx context.Context, id int64) (any, error) {
	return uc.repo.Delete(ctx, id)
}

func normalizeDistribucion(in dto.DistribucionUpsert) dto.DistribucionUpsert {
	if in.Estado != nil {
		e := strings.ToUpper(strings.TrimSpace(*in.Estado))
		if e == "" {
			in.Estado = nil
		} else {
			in.Estado = &e
		}
	}
	return in
}

func distribucionSearchFields(d entity.Distribucion) []string {
	return []string{deref(d.Destino), deref(d.Estado), derefInt(d.PedidoID), itoa(d.ID)}
}

// enCurso distribución que salió y no terminó.
func enCurso(d entity.Distribucion) bool {
	return d.Estado != nil && *d.Estado == entity.DistribucionEnRuta
}
