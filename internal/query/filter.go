package query

import (
	"strings"
	"time"
)

// Filter devuelve la subsecuencia de items que cumplen pred, preservando
// el orden relativo original (filtro estable).
func Filter[T any](items []T, pred func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// MatchFold reporta si query aparece como subcadena de value, sin
// distinguir mayúsculas. Un query vacío no impone restricción.
func MatchFold(value, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(q))
}

// InIntRange reporta si v cae dentro del rango [min, max].
// Límites nil no imponen restricción; ambos son inclusivos.
func InIntRange(v int, min, max *int) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

// InFloatRange reporta si v cae dentro del rango [min, max] (inclusivo).
func InFloatRange(v float64, min, max *float64) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

// InDateRange reporta si t cae dentro de [from, to] (inclusivo).
// Límites nil no imponen restricción.
func InDateRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}
