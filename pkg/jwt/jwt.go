package jwt

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims claims que emite el backend ERP: subject = username, más el rol.
// Solo se leen para mostrar la sesión; el cliente nunca verifica la firma.
type Claims struct {
	jwt.RegisteredClaims
	Rol  string `json:"rol,omitempty"`
	Role string `json:"role,omitempty"`
}

// Info resumen legible de un token.
type Info struct {
	Subject   string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired indica si el token tiene exp y ya pasó.
func (i Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// WellFormed comprueba la forma estructural del token: no vacío y exactamente tres
// segmentos separados por punto. No es una validación criptográfica.
func WellFormed(token string) bool {
	return token != "" && strings.Count(token, ".") == 2
}

// StripBearer quita el prefijo "Bearer " si viene incluido en el token.
func StripBearer(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "Bearer ") {
		return strings.TrimSpace(raw[len("Bearer "):])
	}
	return raw
}

// Inspect decodifica los claims sin verificar firma (la clave vive en el backend).
func Inspect(token string) (*Info, error) {
	if !WellFormed(token) {
		return nil, fmt.Errorf("jwt: token mal formado")
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("jwt: decodificar claims: %w", err)
	}
	info := &Info{Subject: claims.Subject, Role: claims.Rol}
	if info.Role == "" {
		info.Role = claims.Role
	}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}
