package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/application/usecase"
)

// MaquiladoHandler órdenes de maquila.
type MaquiladoHandler struct {
	uc *usecase.MaquiladoUseCase
}

// NewMaquiladoHandler construye el handler.
func NewMaquiladoHandler(uc *usecase.MaquiladoUseCase) *MaquiladoHandler {
	return &MaquiladoHandler{uc: uc}
}

// List godoc
// @Summary      Listar maquilados
// @Description  Filtro exacto por estado y búsqueda por número de orden, proveedor, RUC, estado y observaciones.
// @Tags         maquilados
// @Produce      json
// @Param        q       query  string  false  "Texto a buscar"
// @Param        estado  query  string  false  "PENDIENTE, EN_PROCESO, FINALIZADO, RECIBIDO, CANCELADO"
// @Param        page    query  int     false  "Página"  default(1)
// @Success      200     {object}  dto.Page[entity.Maquilado]
// @Router       /maquilados [get]
func (h *MaquiladoHandler) List(c *fiber.Ctx) error {
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

// FindByNumero godoc
// @Summary      Buscar maquilado por número de orden
// @Tags         maquilados
// @Produce      json
// @Param        numero  path  string  true  "Número de orden"
// @Success      200     {object}  entity.Maquilado
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /maquilados/numero/{numero} [get]
func (h *MaquiladoHandler) FindByNumero(c *fiber.Ctx) error {
	out, err := h.uc.FindByNumero(c.UserContext(), c.Params("numero"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener maquilado
// @Tags         maquilados
// @Produce      json
// @Param        id   path  int  true  "ID del maquilado"
// @Success      200  {object}  entity.Maquilado
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /maquilados/{id} [get]
func (h *MaquiladoHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Crear maquilado
// @Tags         maquilados
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MaquiladoUpsert  true  "Datos de la orden"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /maquilados [post]
func (h *MaquiladoHandler) Create(c *fiber.Ctx) error {
	var in dto.MaquiladoUpsert
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
// @Summary      Actualizar maquilado
// @Tags         maquilados
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID del maquilado"
// @Param        body  body  dto.MaquiladoUpsert  true  "Datos de la orden"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /maquilados/{id} [put]
func (h *MaquiladoHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.MaquiladoUpsert
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
// @Summary      Eliminar maquilado
// @Tags         maquilados
// @Param        id   path  int  true  "ID del maquilado"
// @Success      204
// @Router       /maquilados/{id} [delete]
func (h *MaquiladoHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	if _, err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
