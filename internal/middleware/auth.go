package middleware

import (
	"context"
	"net/http"
	"strings"

	"travelo-api/internal/model"
	"travelo-api/internal/session"
)

type tokenVerifier interface {
	VerifyToken(tokenString string) (*model.SessionClaims, error)
}

type contextKey string

const sessionClaimsContextKey contextKey = "session_claims"

const (
	loginPath           = "/login"
	dashboardPrefix     = "/dashboard"
	protectedLandingURL = "/dashboard"
)

// AuthMiddleware gates protected API routes and the dashboard pages using
// the token carried in the auth cookie. Verification is a pure in-process
// crypto check; no I/O happens here.
type AuthMiddleware struct {
	verifier tokenVerifier
	cookies  *session.CookieManager
}

func NewAuthMiddleware(verifier tokenVerifier, cookies *session.CookieManager) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, cookies: cookies}
}

// RequireSession rejects API requests without a valid session cookie and
// puts the verified claims on the request context for downstream handlers.
func (m *AuthMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := m.cookies.Get(r)
		if token == "" {
			writeUnauthorized(w, "Unauthorized")
			return
		}

		claims, err := m.verifier.VerifyToken(token)
		if err != nil {
			writeUnauthorized(w, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), sessionClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Pages enforces the page-level session states in front of the static site:
//
//	dashboard + no token            -> redirect to login
//	dashboard + invalid token       -> clear cookie, redirect to login
//	dashboard + valid token         -> pass through
//	login + valid token             -> redirect to the dashboard
func (m *AuthMiddleware) Pages(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		switch {
		case strings.HasPrefix(path, dashboardPrefix):
			token := m.cookies.Get(r)
			if token == "" {
				http.Redirect(w, r, loginPath, http.StatusFound)
				return
			}
			if _, err := m.verifier.VerifyToken(token); err != nil {
				m.cookies.Clear(w)
				http.Redirect(w, r, loginPath, http.StatusFound)
				return
			}

		case path == loginPath:
			if token := m.cookies.Get(r); token != "" {
				if _, err := m.verifier.VerifyToken(token); err == nil {
					http.Redirect(w, r, protectedLandingURL, http.StatusFound)
					return
				}
			}
		}

		next.ServeHTTP(w, r)
	})
}

func ClaimsFromContext(ctx context.Context) (*model.SessionClaims, bool) {
	claims, ok := ctx.Value(sessionClaimsContextKey).(*model.SessionClaims)
	return claims, ok
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = jsonEncode(w, model.APIResponse{Success: false, Error: message})
}
