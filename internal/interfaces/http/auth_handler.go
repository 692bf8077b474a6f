package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lecoq/erp-admin/internal/application/access"
	"github.com/lecoq/erp-admin/internal/application/auth"
	"github.com/lecoq/erp-admin/internal/application/dto"
	"github.com/lecoq/erp-admin/pkg/jwt"
)

const loginForm = `<!doctype html>
<html lang="es"><head><meta charset="utf-8"><title>ERP Admin - Ingresar</title></head>
<body>
<form method="post" action="/login">
<label>Usuario <input name="username" autocomplete="username"></label>
<label>Contraseña <input name="password" type="password" autocomplete="current-password"></label>
<button type="submit">Ingresar</button>
</form>
</body></html>`

// AuthHandler login, logout y estado de sesión de la consola.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	now func() time.Time
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc, now: time.Now}
}

// LoginPage godoc
// @Summary      Formulario de login
// @Tags         auth
// @Produce      html
// @Success      200
// @Success      302  "ya hay sesión: redirige a /"
// @Router       /login [get]
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if access.Authenticated(h.uc.Session().State()) {
		return c.Redirect(access.RouteHome, fiber.StatusFound)
	}
	c.Type("html", "utf-8")
	return c.SendString(loginForm)
}

// Login godoc
// @Summary      Iniciar sesión contra el backend ERP
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username y password"
// @Success      200   {object}  dto.LoginResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Usuario y contraseña son obligatorios."})
	}
	res, err := h.uc.Login(c.UserContext(), in.Username, in.Password)
	if err != nil {
		return respondError(c, err)
	}
	out := dto.LoginResultResponse{Role: res.Role, Menu: menuView(res.Role)}
	if res.User != nil {
		out.User = res.User
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Avisa al backend sin esperar éxito y siempre limpia la sesión local.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SESSION_STORE", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Sesión cerrada"})
}

// Session godoc
// @Summary      Estado de la sesión local
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	st := h.uc.Session().State()
	out := dto.SessionResponse{Authenticated: access.Authenticated(st)}
	if !out.Authenticated {
		return c.JSON(out)
	}
	out.Role = st.Role
	out.User = st.User
	if info, err := jwt.Inspect(st.Token); err == nil {
		out.Subject = info.Subject
		if !info.ExpiresAt.IsZero() {
			exp := info.ExpiresAt
			out.ExpiresAt = &exp
		}
		out.Expired = info.Expired(h.now())
	}
	return c.JSON(out)
}

// Validate godoc
// @Summary      Validar el token contra el backend
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /session/validate [post]
func (h *AuthHandler) Validate(c *fiber.Ctx) error {
	out, err := h.uc.Validate(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Menu godoc
// @Summary      Menú del rol de la sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MenuResponse
// @Success      302  "sin sesión: redirige a /login"
// @Router       /menu [get]
func (h *AuthHandler) Menu(c *fiber.Ctx) error {
	role := GetRole(c)
	return c.JSON(dto.MenuResponse{Role: role, Items: menuView(role)})
}

func menuView(role string) []dto.MenuItemView {
	items := access.MenuFor(role)
	out := make([]dto.MenuItemView, 0, len(items))
	for _, it := range items {
		out = append(out, dto.MenuItemView{To: it.To, Label: it.Label})
	}
	return out
}
