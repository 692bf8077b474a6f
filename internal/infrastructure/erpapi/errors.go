package erpapi

import (
	"errors"
	"fmt"
)

// APIError respuesta del backend fuera de 2xx.
type APIError struct {
	Method    string
	Path      string
	Status    int
	Message   string // campo "message" del cuerpo, si vino
	ErrorText string // campo "error" del cuerpo, si vino
	Body      any
}

func (e *APIError) Error() string {
	detail := e.Message
	if detail == "" {
		detail = e.ErrorText
	}
	if detail == "" {
		detail = fmt.Sprintf("el backend respondió con estado %d", e.Status)
	}
	return fmt.Sprintf("erpapi: %s %s: %d: %s", e.Method, e.Path, e.Status, detail)
}

func newAPIError(method, path string, status int, body any) *APIError {
	e := &APIError{Method: method, Path: path, Status: status, Body: body}
	if rec, ok := body.(map[string]any); ok {
		r := Record(rec)
		e.Message = r.String("", "message")
		e.ErrorText = r.String("", "error")
	}
	return e
}

// StatusOf devuelve el estado HTTP si err es un *APIError, o 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// MessageOf mensaje legible para mostrar al usuario, en orden: "message" del backend,
// "error" del backend, el mensaje propio del error, fallback.
func MessageOf(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		if apiErr.ErrorText != "" {
			return apiErr.ErrorText
		}
		return fmt.Sprintf("el backend respondió con estado %d", apiErr.Status)
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
