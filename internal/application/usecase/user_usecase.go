package usecase

import (
	"context"
	"strings"

	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/application/ports"
	"github.com/lecoq/erp-admin/internal/domain/entity"
)

// UsuarioUseCase listado y alta de usuarios; el backend hashea el password.
type UsuarioUseCase struct {
	repo ports.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo ports.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// List usuarios con búsqueda y paginación locales.
func (uc *UsuarioUseCase) List(ctx context.Context, q dto.ListQuery) (*dto.Page[entity.Usuario], error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	page := Paginate(Filter(items, q.Q, usuarioSearchFields), q.Page)
	return &page, nil
}

// Create valida y crea un usuario. El rol se normaliza a mayúsculas.
func (uc *UsuarioUseCase) Create(ctx context.Context, in dto.UsuarioCreate) (any, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Rol = strings.ToUpper(strings.TrimSpace(in.Rol))
	if in.Email != nil && strings.TrimSpace(*in.Email) == "" {
		in.Email = nil
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, in)
}

func usuarioSearchFields(u entity.Usuario) []string {
	return []string{u.Username, deref(u.Email), u.Rol, u.Estado, itoa(u.ID)}
}
