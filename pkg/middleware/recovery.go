package middleware

import (
	"fmt"
	"net/http"

	"github.com/progressbuddy/progress-buddy/pkg/logger"
)

// RecoveryMiddleware is the last line of defense: it turns panics into a
// generic 500 JSON body. Detail is echoed only when development is true.
func RecoveryMiddleware(development bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Log.WithField("panic", fmt.Sprintf("%v", rec)).Error("Recovered from panic in handler")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					body := `{"error":"Something went wrong!","message":"Internal server error"}`
					if development {
						body = fmt.Sprintf(`{"error":"Something went wrong!","message":%q}`, fmt.Sprintf("%v", rec))
					}
					_, _ = w.Write([]byte(body))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
