package handler

import (
	"encoding/json"
	"net/http"

	"travelo-api/internal/middleware"
	"travelo-api/internal/model"
	"travelo-api/internal/service"
	"travelo-api/internal/session"
	"travelo-api/pkg/apierror"
)

type AuthHandler struct {
	service *service.AuthService
	cookies *session.CookieManager
}

func NewAuthHandler(service *service.AuthService, cookies *session.CookieManager) *AuthHandler {
	return &AuthHandler{service: service, cookies: cookies}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("Invalid JSON body"))
		return
	}

	user, token, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	h.cookies.Set(w, token)
	writeSuccess(w, http.StatusOK, user)
}

// Logout clears the session cookie unconditionally; calling it without an
// active session is not an error.
func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	h.cookies.Clear(w)
	writeSuccess(w, http.StatusOK, nil)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthorized("Unauthorized"))
		return
	}

	user, err := h.service.CurrentUser(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, user)
}
