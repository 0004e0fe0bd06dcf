package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gajikita/selaras-backend/internal/handler/http/response"
)

// MachineAPIKey guards the inbound attendance-machine endpoint. The machine
// authenticates with a static bearer key, not a JWT.
func MachineAPIKey(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				response.Unauthorized(w, "Missing API key")
				return
			}

			if subtle.ConstantTimeCompare([]byte(token), []byte(apiKey)) != 1 {
				response.Unauthorized(w, "Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
