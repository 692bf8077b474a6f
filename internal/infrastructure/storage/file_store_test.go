package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lecoq/erp-admin/internal/infrastructure/storage"
)

func TestFileStore_SobreviveReapertura(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	s, err := storage.OpenFileStore(path)
	require.NoError(t, err)
	_, ok := s.Get(storage.KeyToken)
	assert.False(t, ok, "un archivo inexistente es un store vacío")

	require.NoError(t, s.Set(storage.KeyToken, "a.b.c"))
	require.NoError(t, s.Set(storage.KeyRole, "VENTAS"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "la sesión no debe ser legible por otros")

	reopened, err := storage.OpenFileStore(path)
	require.NoError(t, err)
	tok, ok := reopened.Get(storage.KeyToken)
	assert.True(t, ok)
	assert.Equal(t, "a.b.c", tok)
	role, _ := reopened.Get(storage.KeyRole)
	assert.Equal(t, "VENTAS", role)
}

func TestFileStore_RemoveTodoBorraArchivo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s, err := storage.OpenFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(storage.KeyToken, "a.b.c"))
	require.NoError(t, s.Set(storage.KeyUser, `{"username":"ana"}`))

	require.NoError(t, s.Remove(storage.KeyToken))
	_, err = os.Stat(path)
	require.NoError(t, err, "queda la clave user")

	require.NoError(t, s.Remove(storage.KeyUser, storage.KeyRole))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "sin claves no queda archivo")
}

func TestFileStore_JSONInvalido(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{no-json"), 0o600))

	_, err := storage.OpenFileStore(path)
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	s := storage.NewMemoryStore()
	require.NoError(t, s.Set(storage.KeyRole, "ADMIN"))
	v, ok := s.Get(storage.KeyRole)
	assert.True(t, ok)
	assert.Equal(t, "ADMIN", v)
	require.NoError(t, s.Remove(storage.KeyRole, "inexistente"))
	assert.Equal(t, 0, s.Len())
}
