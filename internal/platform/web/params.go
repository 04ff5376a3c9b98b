package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// dateLayout es el formato de fechas en query params y cuerpos (YYYY-MM-DD).
const dateLayout = "2006-01-02"

// PageParams extrae page y limit con defaults (1, 10). Valores fuera de
// rango son violación de contrato del caller y se rechazan acá, antes de
// llegar al núcleo.
func PageParams(r *http.Request) (page, limit int, err error) {
	page, limit = 1, 10

	if raw := QueryString(r, "page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return 0, 0, errors.New("page must be an integer >= 1")
		}
	}
	if raw := QueryString(r, "limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > 100 {
			return 0, 0, errors.New("limit must be an integer between 1 and 100")
		}
	}
	return page, limit, nil
}

// QueryString devuelve el query param recortado ("" si no vino).
func QueryString(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

// QueryInt devuelve nil cuando el parámetro no vino.
func QueryInt(r *http.Request, name string) (*int, error) {
	raw := QueryString(r, name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.New(name + " must be an integer")
	}
	return &v, nil
}

// QueryFloat devuelve nil cuando el parámetro no vino.
func QueryFloat(r *http.Request, name string) (*float64, error) {
	raw := QueryString(r, name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.New(name + " must be a number")
	}
	return &v, nil
}

// QueryBool devuelve nil cuando el parámetro no vino.
func QueryBool(r *http.Request, name string) (*bool, error) {
	raw := QueryString(r, name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.New(name + " must be true or false")
	}
	return &v, nil
}

// QueryDate parsea YYYY-MM-DD; nil cuando el parámetro no vino.
func QueryDate(r *http.Request, name string) (*time.Time, error) {
	raw := QueryString(r, name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, errors.New(name + " must be YYYY-MM-DD")
	}
	return &t, nil
}

// ParseDate parsea una fecha YYYY-MM-DD de un cuerpo de request.
func ParseDate(raw string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(raw))
}

// ParseOptionalDate devuelve nil para "".
func ParseOptionalDate(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
