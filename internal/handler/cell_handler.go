package handler

import (
	"encoding/json"
	"net/http"

	"github.com/chosundeveloper/rollbook/internal/domain"
)

func (h *Handler) ListCells(w http.ResponseWriter, r *http.Request) {
	cells, err := h.cellService.ListWithRoster(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(CellsResponse{Cells: cells})
}

func (h *Handler) CreateCell(w http.ResponseWriter, r *http.Request) {
	var req CreateCellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("셀장 ID와 이름이 필요합니다."))
		return
	}

	cell, err := h.cellService.Create(r.Context(), req.LeaderID, req.LeaderName)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CellResponse{Cell: *cell})
}

func (h *Handler) UpdateCell(w http.ResponseWriter, r *http.Request) {
	var req UpdateCellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("셀장 ID와 이름이 필요합니다."))
		return
	}

	cell, err := h.cellService.Update(r.Context(), req.ID, req.LeaderID, req.LeaderName)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(CellResponse{Cell: *cell})
}

func (h *Handler) DeleteCell(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		h.handleError(w, &domain.DomainError{Code: "BAD_REQUEST", Message: "id parameter is required"})
		return
	}

	if err := h.cellService.Delete(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(OkResponse{Ok: true})
}

func (h *Handler) AddCellMember(w http.ResponseWriter, r *http.Request) {
	var req CellMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("셀 ID와 멤버 ID가 필요합니다."))
		return
	}
	if req.Role == "" {
		req.Role = string(domain.RoleMember)
	}

	cell, err := h.cellService.AddMember(r.Context(), req.CellID, req.MemberID, domain.CellRole(req.Role))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(CellResponse{Cell: *cell})
}

func (h *Handler) RemoveCellMember(w http.ResponseWriter, r *http.Request) {
	cellID := r.URL.Query().Get("cellId")
	memberID := r.URL.Query().Get("memberId")
	if cellID == "" || memberID == "" {
		h.handleError(w, domain.NewValidationError("셀 ID와 멤버 ID가 필요합니다."))
		return
	}

	if err := h.cellService.RemoveMember(r.Context(), cellID, memberID); err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(OkResponse{Ok: true})
}
