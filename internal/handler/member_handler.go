package handler

import (
	"encoding/json"
	"net/http"

	"github.com/chosundeveloper/rollbook/internal/domain"
)

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberService.List(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(MembersResponse{Members: members})
}

func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req NewMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("Name is required"))
		return
	}

	member, err := h.memberService.Add(r.Context(), domain.NewMemberPayload{
		Name:      req.Name,
		BirthYear: req.BirthYear,
		Team:      req.Team,
		Contact:   req.Contact,
		Role:      req.Role,
		JoinedAt:  req.JoinedAt,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(MemberResponse{Member: *member})
}
