package middleware

import (
	"mime"
	"net/http"

	"github.com/vfg2006/seller-metrics-api/pkg/apiErrors"
)

// RequireContentType rejeita requisições cujo Content-Type não seja o esperado
func RequireContentType(mediaType string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil || got != mediaType {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Content-Type deve ser "+mediaType, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
