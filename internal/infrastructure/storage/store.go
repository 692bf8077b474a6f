// Package storage implementa el almacenamiento local clave/valor de la sesión
// (el equivalente a localStorage): claves token, role y user.
package storage

import (
	"sync"

	"github.com/lecoq/erp-admin/internal/application/ports"
)

// Claves persistidas.
const (
	KeyToken = ports.SessionKeyToken
	KeyRole  = ports.SessionKeyRole
	KeyUser  = ports.SessionKeyUser
)

// Store almacenamiento clave/valor de cadenas.
type Store = ports.SessionStore

var _ Store = (*MemoryStore)(nil)

// MemoryStore Store en memoria; no sobrevive al proceso.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore construye un MemoryStore vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Get devuelve el valor de key.
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

// Set guarda value en key.
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Remove borra las claves indicadas; las ausentes se ignoran.
func (s *MemoryStore) Remove(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.data, k)
	}
	return nil
}

// Len cantidad de claves guardadas.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
