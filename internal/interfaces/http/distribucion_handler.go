package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/application/usecase"
)

// DistribucionHandler distribuciones (despachos de pedidos).
type DistribucionHandler struct {
	uc *usecase.DistribucionUseCase
}

// NewDistribucionHandler construye el handler.
func NewDistribucionHandler(uc *usecase.DistribucionUseCase) *DistribucionHandler {
	return &DistribucionHandler{uc: uc}
}

// List godoc
// @Summary      Listar distribuciones
// @Description  Búsqueda por destino, estado, pedido e id; 8 por página.
// @Tags         distribuciones
// @Produce      json
// @Param        q     query  string  false  "Texto a buscar"
// @Param        page  query  int     false  "Página"  default(1)
// @Success      200   {object}  dto.Page[entity.Distribucion]
// @Router       /distribuciones [get]
func (h *DistribucionHandler) List(c *fiber.Ctx) error {
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

// GetByID godoc
// @Summary      Obtener distribución
// @Tags         distribuciones
// @Produce      json
// @Param        id   path  int  true  "ID de la distribución"
// @Success      200  {object}  entity.Distribucion
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /distribuciones/{id} [get]
func (h *DistribucionHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear distribución
// @Description  pedidoId es obligatorio y viaja como query param al backend.
// @Tags         distribuciones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DistribucionUpsert  true  "Datos de la distribución"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /distribuciones [post]
func (h *DistribucionHandler) Create(c *fiber.Ctx) error {
	var in dto.DistribucionUpsert
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar distribución
// @Description  El pedido asociado no se puede cambiar; pedidoId se ignora.
// @Tags         distribuciones
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID de la distribución"
// @Param        body  body  dto.DistribucionUpsert  true  "Datos de la distribución"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /distribuciones/{id} [put]
func (h *DistribucionHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.DistribucionUpsert
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar distribución
// @Tags         distribuciones
// @Param        id   path  int  true  "ID de la distribución"
// @Success      204
// @Router       /distribuciones/{id} [delete]
func (h *DistribucionHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	if _, err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
