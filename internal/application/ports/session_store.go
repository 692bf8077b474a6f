package ports

// Claves del almacenamiento local de sesión.
const (
	SessionKeyToken = "token"
	SessionKeyRole  = "role"
	SessionKeyUser  = "user"
)

// SessionStore almacenamiento clave/valor donde sobrevive la sesión entre procesos.
type SessionStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(keys ...string) error
}

// TokenHolder fija el token bearer de las peticiones salientes (lo implementa erpapi.Client).
type TokenHolder interface {
	SetAuthToken(token string) error
}
