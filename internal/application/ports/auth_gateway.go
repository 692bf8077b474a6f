package ports

import (
	"context"

	"github.com/lecoq/erp-admin/internal/application/dto"
)

// AuthGateway puerto hacia los endpoints /api/auth del backend.
type AuthGateway interface {
	Login(ctx context.Context, username, password string) (*dto.LoginResponse, error)
	Validate(ctx context.Context) (map[string]any, error)
	Logout(ctx context.Context) error
}
