package auth

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/lecoq/erp-admin/internal/application/ports"
	"github.com/lecoq/erp-admin/internal/domain"
	"github.com/lecoq/erp-admin/internal/domain/entity"
	"github.com/lecoq/erp-admin/pkg/jwt"
	"github.com/lecoq/erp-admin/pkg/logger"
)

// ErrInvalidJWT el login respondió sin un token con forma de JWT.
var ErrInvalidJWT = errors.New("El backend no retornó un JWT válido.")

// Resultados registrados por LoginRecorder.
const (
	LoginOK       = "ok"
	LoginRejected = "rejected"
	LoginInvalid  = "invalid_jwt"
)

// LoginRecorder cuenta intentos de login (lo implementa metrics.Metrics).
type LoginRecorder interface {
	RecordLogin(result string)
}

// LoginResult sesión obtenida en el login: token sin prefijo Bearer, rol y datos del usuario.
type LoginResult struct {
	Token string
	Role  string
	User  *entity.SessionUser
}

// AuthUseCase casos de uso de autenticación contra el backend: login, validación y logout.
type AuthUseCase struct {
	gateway     ports.AuthGateway
	session     *Session
	defaultRole string
	log         *logger.Logger
	recorder    LoginRecorder
}

// NewAuthUseCase construye el caso de uso. defaultRole se asume cuando el backend
// no informa rol; vacío equivale a ADMIN.
func NewAuthUseCase(gateway ports.AuthGateway, session *Session, defaultRole string, log *logger.Logger) *AuthUseCase {
	defaultRole = strings.ToUpper(strings.TrimSpace(defaultRole))
	if defaultRole == "" {
		defaultRole = entity.RoleAdmin
	}
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{gateway: gateway, session: session, defaultRole: defaultRole, log: log}
}

// WithRecorder inyecta el contador de logins.
func (uc *AuthUseCase) WithRecorder(r LoginRecorder) *AuthUseCase {
	uc.recorder = r
	return uc
}

// Session sesión administrada por el caso de uso.
func (uc *AuthUseCase) Session() *Session { return uc.session }

// Login autentica contra el backend, exige un JWT bien formado y persiste la sesión.
func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	resp, err := uc.gateway.Login(ctx, username, password)
	if err != nil {
		uc.record(LoginRejected)
		return nil, err
	}

	raw := ""
	if resp != nil && resp.Data != nil {
		raw = resp.Data.Token
	}
	token := jwt.StripBearer(raw)
	if !jwt.WellFormed(token) {
		uc.record(LoginInvalid)
		uc.log.Warn().Str("username", username).Msg("login sin JWT válido")
		return nil, ErrInvalidJWT
	}

	role := ""
	if resp.Data.Rol != nil {
		role = strings.TrimSpace(*resp.Data.Rol)
	}
	if role == "" {
		role = uc.defaultRole
		uc.log.Warn().Str("username", username).Str("role", role).
			Msg("el backend no envió rol; se asume el rol por defecto")
	}

	user := sessionUser(resp.Data.Username, resp.Data.ID, resp.Data.Email, resp.Data.NombreCompleto)
	var rawUser json.RawMessage
	if user != nil {
		rawUser, err = json.Marshal(user)
		if err != nil {
			return nil, err
		}
	}
	if err := uc.session.set(token, role, rawUser); err != nil {
		return nil, err
	}

	uc.record(LoginOK)
	uc.log.Info().Str("username", username).Str("role", role).Msg("sesión iniciada")
	return &LoginResult{Token: token, Role: role, User: user}, nil
}

// Validate consulta al backend si el token vigente sigue siendo válido.
func (uc *AuthUseCase) Validate(ctx context.Context) (map[string]any, error) {
	if !uc.session.State().Authenticated() {
		return nil, domain.ErrNoSession
	}
	return uc.gateway.Validate(ctx)
}

// Logout avisa al backend sin esperar éxito y siempre limpia la sesión local.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	if err := uc.gateway.Logout(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("logout en el backend falló; se limpia la sesión local igual")
	}
	return uc.session.clear()
}

func (uc *AuthUseCase) record(result string) {
	if uc.recorder != nil {
		uc.recorder.RecordLogin(result)
	}
}

func sessionUser(username string, id *int64, email, nombre string) *entity.SessionUser {
	if username == "" && id == nil && email == "" && nombre == "" {
		return nil
	}
	u := &entity.SessionUser{Username: username, Email: email, NombreCompleto: nombre}
	if id != nil {
		u.ID = *id
	}
	return u
}
