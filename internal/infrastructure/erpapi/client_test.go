package erpapi_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lecoq/erp-admin/internal/infrastructure/erpapi"
	"github.com/lecoq/erp-admin/internal/infrastructure/storage"
)

type recorderSpy struct {
	calls []string
}

func (r *recorderSpy) RecordRequest(method, resource, status string, _ time.Duration) {
	r.calls = append(r.calls, method+" "+resource+" "+status)
}

func TestClient_SetAuthTokenAplicaYPersiste(t *testing.T) {
	fb := newFakeBackend(t, http.StatusOK, `[]`)
	store := storage.NewMemoryStore()
	c := erpapi.NewClient(fb.URL, store)

	_, err := c.Get(context.Background(), "/api/productos")
	require.NoError(t, err)
	assert.Empty(t, fb.last(t).Auth, "sin token no se envía Authorization")

	require.NoError(t, c.SetAuthToken("a.b.c"))
	_, err = c.Get(context.Background(), "/api/productos")
	require.NoError(t, err)
	assert.Equal(t, "Bearer a.b.c", fb.last(t).Auth)
	tok, ok := store.Get(storage.KeyToken)
	assert.True(t, ok)
	assert.Equal(t, "a.b.c", tok)

	require.NoError(t, c.SetAuthToken(""))
	_, err = c.Get(context.Background(), "/api/productos")
	require.NoError(t, err)
	assert.Empty(t, fb.last(t).Auth)
	_, ok = store.Get(storage.KeyToken)
	assert.False(t, ok)
}

func TestClient_ReaplicaTokenGuardado(t *testing.T) {
	fb := newFakeBackend(t, http.StatusOK, `[]`)
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(storage.KeyToken, "x.y.z"))

	c := erpapi.NewClient(fb.URL+"/", store)
	assert.Equal(t, fb.URL, c.BaseURL())
	assert.Equal(t, "x.y.z", c.Token())

	_, err := c.Get(context.Background(), "/api/pedidos")
	require.NoError(t, err)
	assert.Equal(t, "Bearer x.y.z", fb.last(t).Auth)
}

func TestClient_ErrorDelBackend(t *testing.T) {
	fb := newFakeBackend(t, http.StatusBadRequest, `{"success":false,"message":"Stock insuficiente"}`)
	spy := &recorderSpy{}
	c := erpapi.NewClient(fb.URL, nil, erpapi.WithRecorder(spy))

	_, err := c.Post(context.Background(), "/api/pedidos", nil, map[string]any{"x": 1})
	require.Error(t, err)

	var apiErr *erpapi.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Stock insuficiente", apiErr.Message)
	assert.Equal(t, http.StatusBadRequest, erpapi.StatusOf(err))
	assert.Equal(t, []string{"POST pedidos 400"}, spy.calls)
}

func TestClient_CuerpoVacio(t *testing.T) {
	fb := newFakeBackend(t, http.StatusOK, ``)
	body, err := fb.client().Delete(context.Background(), "/api/productos/3")
	require.NoError(t, err)
	assert.Nil(t, body)
	assert.Equal(t, http.MethodDelete, fb.last(t).Method)
}

func TestClient_BackendInalcanzable(t *testing.T) {
	fb := newFakeBackend(t, http.StatusOK, `[]`)
	url := fb.URL
	fb.Close()

	_, err := erpapi.NewClient(url, nil).Get(context.Background(), "/api/productos")
	require.Error(t, err)
	assert.Equal(t, 0, erpapi.StatusOf(err))
}

// ──────────────────────────────────────────────────────────────────────────────
// MessageOf
// ──────────────────────────────────────────────────────────────────────────────

func TestMessageOf_Orden(t *testing.T) {
	assert.Equal(t, "m", erpapi.MessageOf(&erpapi.APIError{Status: 400, Message: "m", ErrorText: "e"}, "fb"))
	assert.Equal(t, "e", erpapi.MessageOf(&erpapi.APIError{Status: 400, ErrorText: "e"}, "fb"))
	assert.Equal(t, "boom", erpapi.MessageOf(errors.New("boom"), "fb"))
	assert.Equal(t, "fb", erpapi.MessageOf(nil, "fb"))
}

func TestMessageOf_ErrorEnvuelto(t *testing.T) {
	err := errors.Join(errors.New("contexto"), &erpapi.APIError{Status: 500, ErrorText: "Internal Server Error"})
	assert.Equal(t, "Internal Server Error", erpapi.MessageOf(err, "fb"))
}
