package web

import (
	"encoding/json"
	"net/http"

	"dog-adoption-api/internal/query"
)

// ErrorResponse es el sobre de error uniforme de la API: un kind estable
// para máquinas y un mensaje legible.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ListResponse envuelve una lista ventaneada junto a su descriptor de
// paginación.
type ListResponse struct {
	Data       any        `json:"data"`
	Pagination query.Meta `json:"pagination"`
}

// Kinds estables para ErrorResponse.Error.
const (
	KindNotFound   = "not_found"
	KindBadRequest = "bad_request"
	KindValidation = "validation_error"
	KindInternal   = "internal_error"
)

// WriteJSON serializa v con el status indicado. Antes cada módulo
// duplicaba su propio writeJSON; con cinco módulos conviene el helper común.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError emite el sobre {error, message} con el status indicado.
func WriteError(w http.ResponseWriter, status int, kind, msg string) {
	WriteJSON(w, status, ErrorResponse{Error: kind, Message: msg})
}
