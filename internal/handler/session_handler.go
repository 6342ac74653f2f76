package handler

import (
	"encoding/json"
	"net/http"

	"github.com/chosundeveloper/rollbook/internal/domain"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("아이디와 비밀번호를 입력해 주세요."))
		return
	}

	account, err := h.accountService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(w, err)
		return
	}

	token := h.authority.CreateToken(account.Username)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(OkResponse{Ok: true})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:   sessionCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(OkResponse{Ok: true})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
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
	if account == nil {
		h.handleError(w, domain.ErrUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(MeResponse{
		Username:    account.Username,
		DisplayName: account.DisplayName,
		Roles:       account.Roles,
		CellID:      account.CellID,
	})
}
