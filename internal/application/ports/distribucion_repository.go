package ports

import (
	"context"

	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/domain/entity"
)

// DistribucionRepository puerto hacia el backend para distribuciones.
type DistribucionRepository interface {
	List(ctx context.Context) ([]entity.Distribucion, error)
	GetByID(ctx context.Context, id int64) (*entity.Distribucion, error)
	Create(ctx context.Context, in dto.DistribucionUpsert) (any, error)
	Update(ctx context.Context, id int64, in dto.DistribucionUpsert) (any, error)
	Delete(ctx context.Context, id int64) (any, error)
}
