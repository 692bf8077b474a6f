package auth

import (
	"encoding/json"
	"sync"

	"github.com/lecoq/erp-admin/internal/application/ports"
	"github.com/lecoq/erp-admin/internal/domain/entity"
)

// Session estado de sesión del proceso. Se carga una vez del almacenamiento local
// y solo Login/Logout lo modifican; el resto lo lee con State.
type Session struct {
	mu     sync.RWMutex
	store  ports.SessionStore
	tokens ports.TokenHolder
	state  entity.Session
}

// NewSession construye la sesión sobre store; tokens recibe el bearer vigente.
func NewSession(store ports.SessionStore, tokens ports.TokenHolder) *Session {
	return &Session{store: store, tokens: tokens}
}

// Init carga token, rol y usuario guardados. Un usuario guardado que no es JSON se descarta.
func (s *Session) Init() entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := entity.Session{}
	st.Token, _ = s.store.Get(ports.SessionKeyToken)
	st.Role, _ = s.store.Get(ports.SessionKeyRole)
	if raw, ok := s.store.Get(ports.SessionKeyUser); ok && json.Valid([]byte(raw)) {
		st.User = json.RawMessage(raw)
	}
	s.state = st
	return st
}

// State copia del estado actual.
func (s *Session) State() entity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// set fija token (también en el cliente HTTP), rol y usuario.
func (s *Session) set(token, role string, user json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tokens.SetAuthToken(token); err != nil {
		return err
	}
	if err := s.store.Set(ports.SessionKeyRole, role); err != nil {
		return err
	}
	if len(user) > 0 {
		if err := s.store.Set(ports.SessionKeyUser, string(user)); err != nil {
			return err
		}
	} else if err := s.store.Remove(ports.SessionKeyUser); err != nil {
		return err
	}
	s.state = entity.Session{Token: token, Role: role, User: user}
	return nil
}

// clear borra token, rol y usuario. El estado en memoria queda vacío aunque
// falle el almacenamiento; se devuelve el primer error.
func (s *Session) clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = entity.Session{}
	errToken := s.tokens.SetAuthToken("")
	errStore := s.store.Remove(ports.SessionKeyToken, ports.SessionKeyRole, ports.SessionKeyUser)
	if errToken != nil {
		return errToken
	}
	return errStore
}
