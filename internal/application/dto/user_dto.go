package dto

// UsuarioCreate entrada para POST /api/usuarios (el backend hashea el password).
type UsuarioCreate struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Password string  `json:"password" validate:"required,min=6"`
	Rol      string  `json:"rol" validate:"required,oneof=ADMIN VENTAS MAQUILA"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
}

// LoginRequest credenciales para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginResponse respuesta del backend al login: { message, data: { token, type, rol, ... } }.
type LoginResponse struct {
	Message string     `json:"message"`
	Data    *LoginData `json:"data"`
}

// LoginData payload del login. Rol puede faltar.
type LoginData struct {
	Token          string  `json:"token"`
	Type           string  `json:"type"`
	Rol            *string `json:"rol"`
	Username       string  `json:"username"`
	ID             *int64  `json:"id"`
	Email          string  `json:"email"`
	NombreCompleto string  `json:"nombreCompleto"`
}
