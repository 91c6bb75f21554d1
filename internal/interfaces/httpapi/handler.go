package httpapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/statsapi-gateway/internal/platform/logging"
	"github.com/riskibarqy/statsapi-gateway/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

var errMethodNotAllowed = errors.New("Only POST requests are allowed")

type Handler struct {
	dispatchService *usecase.DispatchService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(dispatchService *usecase.DispatchService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		dispatchService: dispatchService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, map[string]string{"status": "ok"})
}

// ServeCommand decodes a command request from the body, dispatches it and
// writes the envelope.
func (h *Handler) ServeCommand(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ServeCommand")
	defer span.End()

	if r.Method != http.MethodPost {
		h.fail(ctx, w, errMethodNotAllowed, "method", r.Method)
		return
	}

	req, err := h.decodeCommandRequest(ctx, w, r)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	result, err := h.dispatchService.Dispatch(ctx, req)
	if err != nil {
		fields := []any{"command", req.Command}
		var miss *usecase.ResolutionMissError
		if errors.As(err, &miss) {
			fields = append(fields, "query", miss.Query, "suggestions", miss.Suggestions)
		}
		h.fail(ctx, w, err, fields...)
		return
	}

	writeSuccess(ctx, w, result)
}

func (h *Handler) decodeCommandRequest(ctx context.Context, w http.ResponseWriter, r *http.Request) (usecase.CommandRequest, error) {
	ctx, span := startSpan(ctx, "httpapi.Handler.decodeCommandRequest")
	defer span.End()

	var req usecase.CommandRequest

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, fmt.Errorf("%w: request body exceeds %d bytes", usecase.ErrInvalidInput, tooLarge.Limit)
		}
		return req, invalidJSONError{cause: err}
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return req, invalidJSONError{}
	}
	if err := sonic.Unmarshal(trimmed, &req); err != nil {
		return req, invalidJSONError{cause: err}
	}

	if err := h.validator.StructCtx(ctx, req); err != nil {
		return req, missingCommandError{cause: err}
	}

	return req, nil
}

// fail logs err at a level matching its status and writes the error envelope.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, err error, fields ...any) {
	mapped := writeError(ctx, w, err)

	fields = append(fields, "status", mapped.HTTPStatus, "reason", mapped.Reason, "error", err)
	if mapped.HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, "command failed", fields...)
		return
	}
	h.logger.WarnContext(ctx, "command rejected", fields...)
}

// invalidJSONError is reported as-is to callers; the decoder detail stays in
// the logs.
type invalidJSONError struct {
	cause error
}

func (e invalidJSONError) Error() string { return "Invalid JSON in request body" }

func (e invalidJSONError) Unwrap() []error {
	if e.cause == nil {
		return []error{usecase.ErrInvalidInput}
	}
	return []error{usecase.ErrInvalidInput, e.cause}
}

type missingCommandError struct {
	cause error
}

func (e missingCommandError) Error() string { return "Missing 'command' parameter" }

func (e missingCommandError) Unwrap() []error {
	return []error{usecase.ErrInvalidInput, e.cause}
}
