package http

import (
	"encoding/json"
	"net/http"

	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/domain"
	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/logger"
)

type errorResponse struct {
	Kind    domain.ErrorKind `json:"kind"`
	Message string           `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError maps the error taxonomy onto HTTP statuses. Every rejection
// carries its kind so clients can branch deterministically.
func writeError(w http.ResponseWriter, err error) {
	kind := domain.KindOf(err)

	var status int
	switch kind {
	case domain.KindValidation:
		status = http.StatusBadRequest
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindConflict:
		status = http.StatusConflict
	case domain.KindForbidden:
		status = http.StatusForbidden
	case domain.KindInvalidState:
		status = http.StatusUnprocessableEntity
	default:
		status = http.StatusInternalServerError
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "kind", kind, "error", err)
		if kind == domain.KindInternal {
			msg = "internal server error"
		}
	}

	writeJSON(w, status, errorResponse{Kind: kind, Message: msg})
}
