package httpapi

import (
	"net/http"
	"runtime/debug"

	"github.com/fixturehub/football-data/internal/platform/logging"
)

// NewRouter assembles the HTTP surface with the middleware chain applied
// outermost-first: tracing, request logging, CORS, panic recovery.
func NewRouter(handler *Handler, logger *logging.Logger, corsAllowedOrigins []string, internalJobToken string) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerRoutes(mux, handler, internalJobToken)

	return RequestTracing(
		RequestLogging(logger,
			CORS(corsAllowedOrigins,
				recoverPanic(logger, mux),
			),
		),
	)
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.ErrorContext(r.Context(), "panic recovered",
					"panic", recovered,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				writeInternalError(r.Context(), w)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
