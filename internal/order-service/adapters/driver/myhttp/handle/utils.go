package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"fuelgo/internal/order-service/core/myerrors"
)

const (
	WaitTime = 10
)

// jsonResponse writes the given data as a JSON-encoded HTTP response.
func jsonResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// jsonError writes an error response as JSON with the specified HTTP status code.
func jsonError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
		"code":  code,
	})
}

// statusFromError maps core error categories onto HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, myerrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, myerrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, myerrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, myerrors.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, myerrors.ErrDuplicateRequest):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
