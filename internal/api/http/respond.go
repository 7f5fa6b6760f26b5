package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"projectportal/internal/domain"
	"projectportal/internal/logger"
)

// flash is the user-visible outcome message attached to every response,
// consumed by the front end as a notification.
type flash struct {
	Kind    string `json:"kind"` // "success" or "error"
	Message string `json:"message"`
}

type envelope struct {
	Flash flash       `json:"flash"`
	Data  interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	kind := "success"
	if status >= 400 {
		kind = "error"
	}
	_ = json.NewEncoder(w).Encode(envelope{
		Flash: flash{Kind: kind, Message: message},
		Data:  data,
	})
}

// writeError classifies a domain error into an HTTP status. The core
// only classifies; the status mapping lives here at the boundary.
func writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrDeletionFailed):
		status = http.StatusInternalServerError
	default:
		status = http.StatusInternalServerError
		logger.Error("unclassified error", "error", err)
	}
	writeJSON(w, status, err.Error(), nil)
}
