package middleware

import (
	"net/http"

	"github.com/vfg2006/seller-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/seller-metrics-api/pkg/log"
	"golang.org/x/time/rate"
)

// RateLimit limita as requisições da rota a rps por segundo, com rajada de burst.
// rps <= 0 desativa o limite.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}

	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"method":      r.Method,
					"path":        r.URL.Path,
					"remote_addr": r.RemoteAddr,
				}).Warn("Limite de requisições excedido")

				w.Header().Set("Retry-After", "1")
				apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "Limite de requisições excedido", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
