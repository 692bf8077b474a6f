package usecase

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lecoq/erp-admin/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// fieldMessages mensaje mostrado por campo (nombre JSON); tag "" = cualquier regla.
var fieldMessages = map[string]map[string]string{
	"nombre":        {"": "Nombre es obligatorio.", "max": "El nombre es demasiado largo."},
	"stock":         {"": "El stock no puede ser negativo."},
	"clienteNombre": {"": "Cliente es obligatorio.", "max": "El nombre del cliente es demasiado largo."},
	"productoId":    {"": "Cada línea necesita un producto."},
	"cantidad":      {"": "La cantidad debe ser mayor a 0."},
	"estado":        {"": "Estado inválido."},
	"username":      {"": "Usuario es obligatorio.", "min": "El usuario debe tener al menos 3 caracteres.", "max": "El usuario es demasiado largo."},
	"password":      {"": "Contraseña es obligatoria.", "min": "La contraseña debe tener al menos 6 caracteres."},
	"rol":           {"": "Rol inválido."},
	"email":         {"": "Email inválido."},
}

// validateStruct aplica las reglas validate:"..." y devuelve solo el primer error
// como *domain.ValidationError.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.NewValidationError("", err.Error())
	}
	fe := verrs[0]
	return domain.NewValidationError(fe.Field(), messageFor(fe.Field(), fe.Tag()))
}

func messageFor(field, tag string) string {
	if msgs, ok := fieldMessages[field]; ok {
		if m, ok := msgs[tag]; ok {
			return m
		}
		if m, ok := msgs[""]; ok {
			return m
		}
	}
	return "Campo inválido: " + field + "."
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
