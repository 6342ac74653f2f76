package handler

import (
	"encoding/json"
	"net/http"

	"github.com/chosundeveloper/rollbook/internal/domain"
)

func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.List(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	result := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		result = append(result, domainAccountToHTTP(account))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(AccountsResponse{Accounts: result})
}

func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("아이디와 비밀번호는 필수입니다."))
		return
	}

	account, err := h.accountService.Create(r.Context(), req.Username, req.Password, req.DisplayName, req.Roles, req.CellID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(domainAccountToHTTP(*account))
}

func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	var req UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, &domain.DomainError{Code: "BAD_REQUEST", Message: "invalid request body"})
		return
	}

	account, err := h.accountService.Update(r.Context(), req.ID, domain.AccountUpdate{
		DisplayName: req.DisplayName,
		Password:    req.Password,
		Roles:       req.Roles,
		CellID:      req.CellID,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainAccountToHTTP(*account))
}

func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		h.handleError(w, &domain.DomainError{Code: "BAD_REQUEST", Message: "id parameter is required"})
		return
	}

	if err := h.accountService.Delete(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(OkResponse{Ok: true})
}
