package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/MentorMountain/blog/app/auth"
)

// CORS enforces the origin allow-list. Requests from any other origin
// are rejected here, before handler logic runs, regardless of path.
// Requests without an Origin header (non-browser clients) pass through
// untouched.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}
			if !allowed[origin] {
				zap.L().Warn("origin rejected", zap.String("origin", origin))
				w.WriteHeader(http.StatusForbidden)
				return
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			h.Set("Vary", "Origin")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AccessGate verifies the bearer token and decorates the request context
// with the caller's identity. Verification failure short-circuits with
// 401 before the handler runs.
func AccessGate(verifier auth.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			id, err := verifier.Verify(token)
			if err != nil {
				zap.L().Warn("token rejected", zap.Error(err))
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}
