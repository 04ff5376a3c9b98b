package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Instancia global del validador, reutilizable entre requests.
var validate = validator.New()

// DecodeJSON decodifica el cuerpo del request en v.
func DecodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// Validate aplica las reglas declaradas en los tags `validate` del struct.
// El núcleo nunca re-valida: toda regla de forma vive en esta capa.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		// Un solo campo por mensaje alcanza para depurar desde el cliente.
		fe := verrs[0]
		return errors.New("field '" + toSnake(fe.Field()) + "' failed rule '" + fe.Tag() + "'")
	}
	return err
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
