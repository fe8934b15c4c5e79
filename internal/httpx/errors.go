package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ariefcatur/inventory-api/internal/catalog"
)

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps catalog errors onto HTTP status and error code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, catalog.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, catalog.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, catalog.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "store_unavailable"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func writeError(w http.ResponseWriter, err error) {
	code, name := statusFor(err)
	body := errorBody{Error: name}
	// detail driver error tidak dibocorkan untuk 5xx
	if code < http.StatusInternalServerError {
		body.Details = err.Error()
	}
	writeJSON(w, code, body)
}
