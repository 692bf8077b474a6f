package dates_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/lecoq/erp-admin/pkg/dates"
)

func TestToCalendarDate(t *testing.T) {
	cases := []struct {
		name string
		in   *string
		want string
	}{
		{"nil", nil, ""},
		{"vacío", dates.Ptr(""), ""},
		{"solo fecha", dates.Ptr("2024-03-05"), "2024-03-05"},
		{"local sin zona", dates.Ptr("2024-03-05T18:30:00"), "2024-03-05"},
		{"con fracción", dates.Ptr("2024-03-05T18:30:00.123"), "2024-03-05"},
		{"RFC3339 conserva el día del offset", dates.Ptr("2024-03-05T23:30:00-05:00"), "2024-03-05"},
		{"con espacio", dates.Ptr("2024-03-05 08:00:00"), "2024-03-05"},
		{"no parsea: primeros 10", dates.Ptr("05/03/2024 a las 8"), "05/03/2024"},
		{"no parsea y corto", dates.Ptr("ayer"), "ayer"},
		{"no parsea: corta por caracteres, no bytes", dates.Ptr("añññññññññññ"), "añññññññññ"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := dates.ToCalendarDate(tc.in)
			assert.Equal(t, tc.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestToSubmittableDateTime(t *testing.T) {
	assert.Nil(t, dates.ToSubmittableDateTime(nil))
	assert.Nil(t, dates.ToSubmittableDateTime(dates.Ptr("")))
	assert.Equal(t, "2024-03-05T00:00:00", *dates.ToSubmittableDateTime(dates.Ptr("2024-03-05")))
	assert.Equal(t, "2024-03-05T10:15:00", *dates.ToSubmittableDateTime(dates.Ptr("2024-03-05T10:15:00")),
		"una marca de tiempo completa pasa sin cambios")
}

// Ida y vuelta: cualquier fecha de calendario válida termina en medianoche.
func TestRoundTrip_CalendarioAMedianoche(t *testing.T) {
	for _, d := range []string{"2024-01-01", "2024-02-29", "1999-12-31", "2030-07-15"} {
		cal := dates.ToCalendarDate(&d)
		got := dates.ToSubmittableDateTime(&cal)
		if assert.NotNil(t, got) {
			assert.Equal(t, d+"T00:00:00", *got)
		}
	}
}
