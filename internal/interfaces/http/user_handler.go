package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/application/usecase"
)

// UserHandler administración de usuarios (solo ADMIN).
type UserHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UsuarioUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         usuarios
// @Produce      json
// @Param        q     query  string  false  "Texto a buscar"
// @Param        page  query  int     false  "Página"  default(1)
// @Success      200   {object}  dto.Page[entity.Usuario]
// @Router       /usuarios [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	q, err := listQuery(c)
	if err != nil {
		return invalidQuery(c)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UsuarioCreate  true  "username, password, rol, email"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /usuarios [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.UsuarioCreate
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
