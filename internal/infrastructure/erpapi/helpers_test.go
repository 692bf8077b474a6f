package erpapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lecoq/erp-admin/internal/infrastructure/erpapi"
	"github.com/lecoq/erp-admin/internal/infrastructure/storage"
)

// ──────────────────────────────────────────────────────────────────────────────
// Backend falso
// ──────────────────────────────────────────────────────────────────────────────

// captured petición recibida por el backend falso.
type captured struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   map[string]any
}

// fakeBackend servidor httptest que responde siempre con status/body y guarda
// las peticiones recibidas.
type fakeBackend struct {
	*httptest.Server
	mu       sync.Mutex
	requests []captured
	status   int
	body     string
}

func newFakeBackend(t *testing.T, status int, body string) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{status: status, body: body}
	fb.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := captured{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Auth:   r.Header.Get("Authorization"),
		}
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &c.Body)
		}
		fb.mu.Lock()
		fb.requests = append(fb.requests, c)
		fb.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(fb.status)
		_, _ = io.WriteString(w, fb.body)
	}))
	t.Cleanup(fb.Close)
	return fb
}

func (fb *fakeBackend) calls() []captured {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]captured(nil), fb.requests...)
}

func (fb *fakeBackend) last(t *testing.T) captured {
	t.Helper()
	calls := fb.calls()
	require.NotEmpty(t, calls, "el backend debía recibir al menos una petición")
	return calls[len(calls)-1]
}

func (fb *fakeBackend) client() *erpapi.Client {
	return erpapi.NewClient(fb.URL, storage.NewMemoryStore())
}
