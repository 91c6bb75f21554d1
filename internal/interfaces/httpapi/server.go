package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/statsapi-gateway/internal/platform/logging"
)

// NewRouter mounts the liveness probe and the command endpoint, which accepts
// every path, behind the shared middleware chain.
func NewRouter(handler *Handler, logger *logging.Logger, corsAllowedOrigins []string) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("/", handler.ServeCommand)

	return RequestTracing(RequestID(RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w, fmt.Sprint(rec))
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
