// Package session manages the auth-token cookie that transports the signed
// session token. All state lives in the token itself; this package only
// reads and writes the per-request cookie.
package session

import (
	"net/http"
	"time"
)

const CookieName = "auth-token"

type CookieManager struct {
	maxAge time.Duration
	secure bool
}

// NewCookieManager configures the cookie attributes once. secure should be
// true in production so the cookie is never sent over plain HTTP.
func NewCookieManager(maxAge time.Duration, secure bool) *CookieManager {
	if maxAge <= 0 {
		maxAge = 168 * time.Hour
	}

	return &CookieManager{maxAge: maxAge, secure: secure}
}

// Set stores the token, overwriting any prior value. The cookie is HttpOnly
// and site-wide: page scripts can never read it.
func (m *CookieManager) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Get returns the token for the current request, or "" when no cookie is
// present.
func (m *CookieManager) Get(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// Clear deletes the cookie so subsequent requests carry no session.
func (m *CookieManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
