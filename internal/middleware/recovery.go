package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/Yvaloski/MyDeskApp/internal/httputil"
)

// Recovery converts handler panics into the standard 500 error envelope
// instead of dropping the connection. http.ErrAbortHandler is re-raised
// so deliberate aborts keep their net/http semantics.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("handler panicked",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", rec,
					"stack", string(debug.Stack()),
				)

				httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
