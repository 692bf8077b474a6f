package usecase

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/lecoq/erp-admin/internal/application/dto"
)

// Fold normaliza texto para búsqueda: minúsculas y sin tildes ("Jabón" -> "jabon").
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Matches indica si q (ya recortado) aparece en alguno de los campos. q vacío coincide siempre.
func Matches(q string, fields ...string) bool {
	q = Fold(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(Fold(f), q) {
			return true
		}
	}
	return false
}

// Filter conserva los elementos cuyo texto de búsqueda contiene q, en el mismo orden.
func Filter[T any](items []T, q string, fields func(T) []string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if Matches(q, fields(it)...) {
			out = append(out, it)
		}
	}
	return out
}

// Paginate corta items en páginas de dto.PageSize. Una página fuera de rango vuelve a 1
// y siempre hay al menos una página.
func Paginate[T any](items []T, page int) dto.Page[T] {
	total := len(items)
	totalPages := (total + dto.PageSize - 1) / dto.PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 || page > totalPages {
		page = 1
	}
	start := (page - 1) * dto.PageSize
	end := start + dto.PageSize
	if end > total {
		end = total
	}
	view := make([]T, 0, end-start)
	view = append(view, items[start:end]...)
	return dto.Page[T]{
		Items:      view,
		Total:      total,
		Page:       page,
		PageSize:   dto.PageSize,
		TotalPages: totalPages,
	}
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int64) string {
	if n == nil {
		return ""
	}
	return itoa(*n)
}
