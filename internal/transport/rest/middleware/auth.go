package middleware

import (
	"context"
	"net/http"
	"strings"

	"videosurvey/internal/service"
)

type contextKey string

const SessionIDKey contextKey = "sessionId"

// SessionMiddleware resolves the session token of a request. The token only
// identifies a session; it is not a login.
type SessionMiddleware struct {
	tokens *service.TokenService
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(tokens *service.TokenService) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens}
}

// RequireSession validates the session token from the Authorization header or query param
func (m *SessionMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			token = r.URL.Query().Get("token")
		}
		if token == "" {
			writeUnauthorized(w, "missing session token")
			return
		}

		claims, err := m.tokens.ValidateSessionToken(token)
		if err != nil {
			writeUnauthorized(w, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), SessionIDKey, claims.SessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID extracts session ID from context
func GetSessionID(ctx context.Context) string {
	if v := ctx.Value(SessionIDKey); v != nil {
		return v.(string)
	}
	return ""
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + msg + `"}`))
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
