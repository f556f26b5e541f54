package httphandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/niksmo/emi-catalog/internal/core/domain"
)

const statusSuccess = "success"

type (
	successResponse struct {
		Status string `json:"status"`
		Data   any    `json:"data"`
	}

	errorResponse struct {
		Message string `json:"message"`
		Error   string `json:"error,omitempty"`
	}
)

func writeSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	writeJSON(w, r, status, successResponse{Status: statusSuccess, Data: data})
}

// writeError is the single place where internal errors become client
// responses. Only messages produced by this service reach the client,
// store and driver errors are logged instead.
func writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, resp := classify(err)

	log := slog.With("op", op, "requestID", RequestIDFrom(r.Context()))
	if status >= http.StatusInternalServerError {
		log.Error("request failed", "status", status, "err", err)
	} else {
		log.Warn("request rejected", "status", status, "err", err)
	}

	writeJSON(w, r, status, resp)
}

func classify(err error) (int, errorResponse) {
	var vErr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrNoPlans):
		return http.StatusBadRequest, errorResponse{Message: "No EMI plans provided"}
	case errors.As(err, &vErr):
		msgs := make([]string, len(vErr.Fields))
		for i, f := range vErr.Fields {
			msgs[i] = f.Message
		}
		return http.StatusBadRequest, errorResponse{
			Message: "Validation failed",
			Error:   strings.Join(msgs, "; "),
		}
	case errors.Is(err, errInvalidJSON):
		return http.StatusBadRequest, errorResponse{Message: "Invalid JSON body"}
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, errorResponse{Message: "Invalid identifier"}
	case errors.Is(err, domain.ErrDuplicate):
		return http.StatusConflict, errorResponse{
			Message: "Already exists",
			Error:   "variant should be unique",
		}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, errorResponse{Message: "Service unavailable"}
	default:
		return http.StatusInternalServerError, errorResponse{Message: "Something went wrong"}
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	const op = "httphandler.writeJSON"

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body",
			"op", op, "requestID", RequestIDFrom(r.Context()), "err", err)
	}
}
