// Package dates convierte entre las fechas que muestra el cliente (solo día) y
// las marcas de tiempo que el backend espera al escribir.
package dates

import (
	"regexp"
	"time"
)

// CalendarLayout formato "YYYY-MM-DD" de los campos de solo fecha.
const CalendarLayout = "2006-01-02"

var calendarDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Formatos aceptados al leer; el primero que parsea gana.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	CalendarLayout,
}

// ToCalendarDate devuelve "YYYY-MM-DD" para una fecha ISO. Si el valor no parsea se
// devuelven sus primeros 10 caracteres tal cual; nil o vacío devuelve "".
// No convierte zonas horarias: se respeta el día del propio valor.
func ToCalendarDate(iso *string) string {
	if iso == nil || *iso == "" {
		return ""
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, *iso); err == nil {
			return t.Format(CalendarLayout)
		}
	}
	if r := []rune(*iso); len(r) > 10 {
		return string(r[:10])
	}
	return *iso
}

// ToSubmittableDateTime agrega medianoche a una fecha "YYYY-MM-DD"; cualquier otro
// valor no vacío pasa sin cambios y nil o vacío devuelve nil.
func ToSubmittableDateTime(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	if calendarDateRe.MatchString(*s) {
		out := *s + "T00:00:00"
		return &out
	}
	out := *s
	return &out
}

// Ptr atajo para construir *string desde literales.
func Ptr(s string) *string { return &s }
