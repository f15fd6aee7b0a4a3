package server

import (
	"encoding/json"
	"net/http"

	"github.com/pidcanvas/pidcanvas/pkg/errors"
)

// writeJSON encodes v as the response body with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

// writeError maps an error's code to an HTTP status and writes a JSON
// error body. Internal details are logged, not leaked.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)

	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidLabel, errors.ErrCodeInvalidGraph,
		errors.ErrCodeInvalidPosition, errors.ErrCodeInvalidKey, errors.ErrCodeInvalidConfig:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeSymbolNotFound, errors.ErrCodeGraphNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeCatalogUnavailable:
		status = http.StatusServiceUnavailable
	case errors.ErrCodeTimeout:
		status = http.StatusGatewayTimeout
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}

	s.writeJSON(w, status, map[string]string{
		"code":  string(code),
		"error": errors.UserMessage(err),
	})
}
