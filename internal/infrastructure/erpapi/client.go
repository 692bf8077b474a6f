// Package erpapi es el adaptador hacia el backend REST del ERP: un cliente HTTP
// compartido con token bearer persistido, la normalización de respuestas y los
// módulos por entidad que implementan los puertos de la aplicación.
package erpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lecoq/erp-admin/internal/infrastructure/storage"
	"github.com/lecoq/erp-admin/pkg/logger"
)

// DefaultBaseURL backend local por defecto.
const DefaultBaseURL = "http://localhost:8080"

// HeaderRequestID cabecera de correlación enviada en cada llamada.
const HeaderRequestID = "X-Request-ID"

// maxBodyBytes límite de lectura de respuestas del backend.
const maxBodyBytes = 8 << 20

// RequestRecorder registra cada llamada al backend (lo implementa metrics.Metrics).
type RequestRecorder interface {
	RecordRequest(method, resource, status string, d time.Duration)
}

// Client cliente HTTP único del proceso. Cuando hay token, todas las peticiones
// llevan Authorization: Bearer <token>. Sin reintentos ni refresh: los errores
// llegan al llamador tal cual.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      storage.Store
	log        *logger.Logger
	recorder   RequestRecorder

	mu    sync.RWMutex
	token string
}

// Option configura el Client.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client (timeouts, transporte de tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger inyecta el logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithRecorder inyecta el registro de métricas.
func WithRecorder(r RequestRecorder) Option {
	return func(c *Client) { c.recorder = r }
}

// NewClient construye el cliente y re-aplica el token guardado en store, si existe.
func NewClient(baseURL string, store storage.Store, opts ...Option) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if store == nil {
		store = storage.NewMemoryStore()
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		store:      store,
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if tok, ok := store.Get(storage.KeyToken); ok && tok != "" {
		c.token = tok
	}
	return c
}

// BaseURL URL base del backend.
func (c *Client) BaseURL() string { return c.baseURL }

// Token token vigente ("" si no hay).
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetAuthToken fija el token para las peticiones siguientes y lo persiste.
// Con token vacío quita la cabecera y borra el valor persistido.
func (c *Client) SetAuthToken(token string) error {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	if token == "" {
		return c.store.Remove(storage.KeyToken)
	}
	return c.store.Set(storage.KeyToken, token)
}

// Get hace GET path.
func (c *Client) Get(ctx context.Context, path string) (any, error) {
	return c.Do(ctx, http.MethodGet, path, nil, nil)
}

// Post hace POST path con body JSON y query opcional.
func (c *Client) Post(ctx context.Context, path string, query url.Values, body any) (any, error) {
	return c.Do(ctx, http.MethodPost, path, query, body)
}

// Put hace PUT path con body JSON.
func (c *Client) Put(ctx context.Context, path string, body any) (any, error) {
	return c.Do(ctx, http.MethodPut, path, nil, body)
}

// Delete hace DELETE path.
func (c *Client) Delete(ctx context.Context, path string) (any, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Do ejecuta la petición y devuelve el cuerpo JSON decodificado (nil si vino vacío).
// Respuestas fuera de 2xx devuelven *APIError; fallas de red, el error de transporte envuelto.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (any, error) {
	start := time.Now()
	resource := resourceOf(path)
	reqID := uuid.NewString()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("erpapi: serializar body de %s %s: %w", method, path, err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("erpapi: crear request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(method, resource, "error", start)
		c.log.Warn().Err(err).
			Str("request_id", reqID).Str("method", method).Str("path", path).
			Msg("backend inalcanzable")
		return nil, fmt.Errorf("erpapi: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	decoded, decodeErr := Decode(io.LimitReader(resp.Body, maxBodyBytes))
	c.record(method, resource, strconv.Itoa(resp.StatusCode), start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(method, path, resp.StatusCode, decoded)
		c.log.Warn().
			Str("request_id", reqID).Str("method", method).Str("path", path).
			Int("status", resp.StatusCode).Str("message", apiErr.Message).
			Dur("duration", time.Since(start)).
			Msg("backend respondió con error")
		return nil, apiErr
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("erpapi: %s %s: respuesta no es JSON: %w", method, path, decodeErr)
	}

	c.log.Debug().
		Str("request_id", reqID).Str("method", method).Str("path", path).
		Int("status", resp.StatusCode).Dur("duration", time.Since(start)).
		Msg("backend ok")
	return decoded, nil
}

func (c *Client) record(method, resource, status string, start time.Time) {
	if c.recorder != nil {
		c.recorder.RecordRequest(method, resource, status, time.Since(start))
	}
}

// resourceOf "/api/productos/3" -> "productos"; acota la cardinalidad de las métricas.
func resourceOf(path string) string {
	p := strings.TrimPrefix(path, "/")
	p = strings.TrimPrefix(p, "api/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "root"
	}
	return p
}
