package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/lecoq/erp-admin/internal/application/auth"
	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/internal/domain"
	"github.com/lecoq/erp-admin/internal/infrastructure/erpapi"
)

// respondError traduce un error de aplicación o del backend a la respuesta HTTP.
// El estado 4xx del backend se conserva; cualquier otra falla del backend es 502.
func respondError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Message})
	case errors.Is(err, auth.ErrInvalidJWT):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "INVALID_JWT", Message: err.Error()})
	case errors.Is(err, domain.ErrNoSession):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	}

	if status := erpapi.StatusOf(err); status != 0 {
		code := fiber.StatusBadGateway
		if status >= 400 && status < 500 {
			code = status
		}
		return c.Status(code).JSON(dto.ErrorResponse{
			Code:    "BACKEND_" + strconv.Itoa(status),
			Message: erpapi.MessageOf(err, "Error del backend"),
		})
	}
	return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
		Code:    "BACKEND_UNAVAILABLE",
		Message: erpapi.MessageOf(err, "No se pudo contactar al backend"),
	})
}

// paramID lee :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// listQuery lee q, page y estado de la query string.
func listQuery(c *fiber.Ctx) (dto.ListQuery, error) {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return q, err
	}
	return q, nil
}

func invalidQuery(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de búsqueda inválidos"})
}
