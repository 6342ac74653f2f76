package handler

import (
	"net/http"

	"github.com/chosundeveloper/rollbook/internal/auth"
	"github.com/chosundeveloper/rollbook/internal/domain"
)

func (h *Handler) session(r *http.Request) *auth.Claims {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil
	}
	return h.authority.Parse(cookie.Value)
}

// RequireAuth rejects requests without a valid session token.
func (h *Handler) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.session(r) == nil {
			h.handleError(w, domain.ErrUnauthorized)
			return
		}
		next(w, r)
	}
}

// RequireAdmin resolves the account behind the token and checks for the
// admin role.
func (h *Handler) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := h.session(r)
		if claims == nil {
			h.handleError(w, domain.ErrUnauthorized)
			return
		}
		account, err := h.accountService.GetByUsername(r.Context(), claims.Username)
		if err != nil {
			h.handleError(w, err)
			return
		}
		if account == nil || !account.IsAdmin() {
			h.handleError(w, domain.ErrForbidden)
			return
		}
		next(w, r)
	}
}
