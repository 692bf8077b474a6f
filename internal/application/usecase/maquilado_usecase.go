package usecase

import (
	"context"
	"strings"

	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/application/ports"
	"github.com/lecoq/erp-admin/internal/domain"
	"github.com/lecoq/erp-admin/internal/domain/entity"
)

// MaquiladoUseCase órdenes de fabricación tercerizada.
type MaquiladoUseCase struct {
	repo ports.MaquiladoRepository
}

// NewMaquiladoUseCase construye el caso de uso.
func NewMaquiladoUseCase(repo ports.MaquiladoRepository) *MaquiladoUseCase {
	return &MaquiladoUseCase{repo: repo}
}

// List aplica primero el filtro exacto por estado (sin distinguir mayúsculas) y
// luego la búsqueda de texto; después pagina.
func (uc *MaquiladoUseCase) List(ctx context.Context, q dto.ListQuery) (*dto.Page[entity.Maquilado], error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if estado := strings.TrimSpace(q.Estado); estado != "" {
		byEstado := make([]entity.Maquilado, 0, len(items))
		for _, m := range items {
			if strings.EqualFold(m.Estado, estado) {
				byEstado = append(byEstado, m)
			}
		}
		items = byEstado
	}
	page := Paginate(Filter(items, q.Q, maquiladoSearchFields), q.Page)
	return &page, nil
}

// GetByID obtiene una orden.
func (uc *MaquiladoUseCase) GetByID(ctx context.Context, id int64) (*entity.Maquilado, error) {
	return uc.repo.GetByID(ctx, id)
}

// FindByNumero busca por número de orden; domain.ErrNotFound si no existe.
func (uc *MaquiladoUseCase) FindByNumero(ctx context.Context, numero string) (*entity.Maquilado, error) {
	numero = strings.TrimSpace(numero)
	if numero == "" {
		return nil, domain.NewValidationError("numeroOrden", "Número de orden es obligatorio.")
	}
	m, err := uc.repo.FindByNumero(ctx, numero)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

// ListByEstado delega el filtro por estado al backend.
func (uc *MaquiladoUseCase) ListByEstado(ctx context.Context, estado string) ([]entity.Maquilado, error) {
	return uc.repo.ListByEstado(ctx, strings.ToUpper(strings.TrimSpace(estado)))
}

// Create valida y crea una orden.
func (uc *MaquiladoUseCase) Create(ctx context.Context, in dto.MaquiladoUpsert) (any, error) {
	if err := validateMaquilado(in); err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, in)
}

// Update valida y actualiza una orden.
func (uc *MaquiladoUseCase) Update(ctx context.Context, id int64, in dto.MaquiladoUpsert) (any, error) {
	if err := validateMaquilado(in); err != nil {
		return nil, err
	}
	return uc.repo.Update(ctx, id, in)
}

// Delete elimina una orden.
func (uc *MaquiladoUseCase) Delete(ctx context.Context, id int64) (any, error) {
	return uc.repo.Delete(ctx, id)
}

// validateMaquilado devuelve el primer problema, en el orden del formulario.
func validateMaquilado(in dto.MaquiladoUpsert) error {
	if in.NumeroOrden == nil || len([]rune(strings.TrimSpace(*in.NumeroOrden))) < 2 {
		return domain.NewValidationError("numeroOrden", "Número de orden es obligatorio.")
	}
	if in.ProveedorNombre == nil || len([]rune(strings.TrimSpace(*in.ProveedorNombre))) < 2 {
		return domain.NewValidationError("proveedorNombre", "Proveedor es obligatorio.")
	}
	if in.CostoTotal.Valid && in.CostoTotal.Decimal.IsNegative() {
		return domain.NewValidationError("costoTotal", "El costo total no puede ser negativo.")
	}
	if in.Estado != nil && *in.Estado != "" && !validEstado(*in.Estado) {
		return domain.NewValidationError("estado", "Estado inválido.")
	}
	return nil
}

func validEstado(e string) bool {
	e = strings.ToUpper(strings.TrimSpace(e))
	for _, known := range entity.EstadosMaquilado {
		if e == known {
			return true
		}
	}
	return false
}

func maquiladoSearchFields(m entity.Maquilado) []string {
	return []string{
		itoa(m.ID), m.NumeroOrden, m.ProveedorNombre, deref(m.ProveedorRuc),
		deref(m.ProveedorContacto), m.Estado, deref(m.Observaciones),
	}
}
