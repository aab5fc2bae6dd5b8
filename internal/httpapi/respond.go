package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"clinical-risk-go/internal/types"
)

// writeJSON encodes before writing the status. A value json rejects is answered
// with a 500 error object.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(types.ErrorResult{
			Error: fmt.Sprintf("encode response: %v", err),
			Kind:  types.KindInternal,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, types.ErrDatasetUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, types.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody rejects empty and malformed payloads as invalid input.
func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		return fmt.Errorf("empty request body: %w", types.ErrInvalidInput)
	default:
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("request body exceeds %d bytes: %w: %w", tooLarge.Limit, types.ErrInvalidInput, err)
		}
		return fmt.Errorf("malformed request body: %v: %w", err, types.ErrInvalidInput)
	}
}
