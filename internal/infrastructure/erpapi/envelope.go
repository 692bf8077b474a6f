package erpapi

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lecoq/erp-admin/internal/domain/entity"
)

// Record objeto JSON crudo del backend.
type Record map[string]any

// Decode decodifica un cuerpo JSON conservando los números como json.Number.
// Un cuerpo vacío devuelve (nil, nil).
func Decode(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

// ExtractList obtiene la secuencia de registros de un cuerpo de listado probando, en
// orden: el cuerpo es un arreglo; body.data es arreglo; body.content es arreglo.
// Si nada aplica devuelve una lista vacía. Elementos que no son objeto quedan como
// registros vacíos para no alterar la cantidad.
func ExtractList(body any) []Record {
	var raw []any
	switch v := body.(type) {
	case []any:
		raw = v
	case map[string]any:
		if arr, ok := v["data"].([]any); ok {
			raw = arr
		} else if arr, ok := v["content"].([]any); ok {
			raw = arr
		}
	}
	out := make([]Record, 0, len(raw))
	for _, item := range raw {
		rec, _ := item.(map[string]any)
		out = append(out, Record(rec))
	}
	return out
}

// ExtractOne obtiene un registro: body.data si es objeto; si no, el propio cuerpo si es
// objeto. Cualquier otra forma (nil, arreglo, escalar) devuelve nil.
func ExtractOne(body any) Record {
	obj, ok := body.(map[string]any)
	if !ok {
		return nil
	}
	if data, ok := obj["data"].(map[string]any); ok {
		return Record(data)
	}
	return Record(obj)
}

// lookup resuelve una clave; "pedido.id" desciende en objetos anidados.
// Solo cuenta como presente un valor no nulo.
func (r Record) lookup(key string) (any, bool) {
	var cur any = map[string]any(r)
	for _, part := range strings.Split(key, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[part]
		if !ok || cur == nil {
			return nil, false
		}
	}
	return cur, true
}

// first primer valor presente y no nulo entre keys.
func (r Record) first(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r.lookup(k); ok {
			return v, true
		}
	}
	return nil, false
}

// String primer valor textual entre keys; def si ninguno está o no es convertible.
func (r Record) String(def string, keys ...string) string {
	if s := r.StringPtr(keys...); s != nil {
		return *s
	}
	return def
}

// StringPtr como String pero con nil como valor por defecto.
func (r Record) StringPtr(keys ...string) *string {
	v, ok := r.first(keys...)
	if !ok {
		return nil
	}
	s, ok := toString(v)
	if !ok {
		return nil
	}
	return &s
}

// Int primer valor entero entre keys; def si ninguno está o no es convertible.
func (r Record) Int(def int64, keys ...string) int64 {
	if n := r.IntPtr(keys...); n != nil {
		return *n
	}
	return def
}

// IntPtr como Int pero con nil como valor por defecto.
func (r Record) IntPtr(keys ...string) *int64 {
	v, ok := r.first(keys...)
	if !ok {
		return nil
	}
	n, ok := toInt(v)
	if !ok {
		return nil
	}
	return &n
}

// Decimal primer valor numérico entre keys; def si ninguno está o no es convertible.
func (r Record) Decimal(def decimal.Decimal, keys ...string) decimal.Decimal {
	if d := r.NullDecimal(keys...); d.Valid {
		return d.Decimal
	}
	return def
}

// NullDecimal como Decimal pero inválido (null) por defecto.
func (r Record) NullDecimal(keys ...string) decimal.NullDecimal {
	v, ok := r.first(keys...)
	if !ok {
		return decimal.NullDecimal{}
	}
	d, ok := toDecimal(v)
	if !ok {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// Records arreglo de objetos bajo la primera clave que tenga un arreglo.
func (r Record) Records(keys ...string) []Record {
	for _, k := range keys {
		v, ok := r.lookup(k)
		if !ok {
			continue
		}
		arr, ok := v.([]any)
		if !ok {
			continue
		}
		out := make([]Record, 0, len(arr))
		for _, item := range arr {
			rec, _ := item.(map[string]any)
			out = append(out, Record(rec))
		}
		return out
	}
	return nil
}

// Estado valor de "estado"; si falta, se deriva de "activo": false -> INACTIVO, si no ACTIVO.
func (r Record) Estado() string {
	if s := r.StringPtr("estado"); s != nil {
		return *s
	}
	if v, ok := r.lookup("activo"); ok {
		if b, isBool := v.(bool); isBool && !b {
			return entity.EstadoInactivo
		}
	}
	return entity.EstadoActivo
}

func toString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	default:
		return "", false
	}
}

func toInt(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int64:
		return t, true
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n, true
		}
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case float64:
		return floatToInt(t)
	case string:
		s := strings.TrimSpace(t)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case int:
		return decimal.NewFromInt(int64(t)), true
	case int64:
		return decimal.NewFromInt(t), true
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		return d, err == nil
	case float64:
		return decimal.NewFromFloat(t), true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		return d, err == nil
	default:
		return decimal.Decimal{}, false
	}
}
