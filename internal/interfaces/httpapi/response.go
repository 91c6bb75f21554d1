package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/statsapi-gateway/internal/usecase"
)

// envelope is the only response shape the gateway emits: exactly one of
// result or error is set.
type envelope struct {
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, result any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, envelope{Result: result})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) mappedError {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	writeJSON(ctx, w, mapped.HTTPStatus, envelope{Error: err.Error()})
	return mapped
}

func writeInternalError(ctx context.Context, w http.ResponseWriter, msg string) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, envelope{Error: "internal server error: " + msg})
}

func mapError(ctx context.Context, err error) mappedError {
	ctx, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, errMethodNotAllowed):
		return mappedError{HTTPStatus: http.StatusMethodNotAllowed, Reason: "methodNotAllowed"}
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidInput"}
	case errors.Is(err, usecase.ErrResolutionMiss):
		return mappedError{HTTPStatus: http.StatusBadRequest, Reason: "resolutionMiss"}
	case errors.Is(err, usecase.ErrUpstream):
		return mappedError{HTTPStatus: http.StatusBadGateway, Reason: "upstreamError"}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{HTTPStatus: http.StatusServiceUnavailable, Reason: "dependencyUnavailable"}
	default:
		return mappedError{HTTPStatus: http.StatusInternalServerError, Reason: "internalError"}
	}
}
