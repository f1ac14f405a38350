package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/charkit/charkit/logger"
)

// Recovery returns middleware that recovers from panics, logs the
// stack, and responds 500. A nil log falls back to the global logger.
func Recovery(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logErr := logger.Error
					if log != nil {
						logErr = log.Error
					}
					logErr("Panic recovered", map[string]interface{}{
						"error":  fmt.Sprintf("%v", rec),
						"stack":  string(debug.Stack()),
						"path":   r.URL.Path,
						"method": r.Method,
					})
					w.Header().Set("Content-Type", "application/json; charset=utf-8")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"error":"Internal server error"}`))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
