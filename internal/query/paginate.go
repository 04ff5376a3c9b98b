package query

// Meta es el descriptor de paginación que acompaña a toda lista ventaneada.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Paginate corta la ventana solicitada (page en base 1) sobre la secuencia
// ya filtrada y construye el descriptor. Total refleja el largo de la
// secuencia antes del corte. Asume entrada válida (page >= 1, limit en
// [1,100], responsabilidad de la capa de validación); una página fuera de
// rango devuelve ventana vacía, nunca error.
func Paginate[T any](items []T, page, limit int) ([]T, Meta) {
	total := len(items)

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return items[start:end], Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
