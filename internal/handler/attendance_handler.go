package handler

import (
	"encoding/json"
	"net/http"

	"github.com/chosundeveloper/rollbook/internal/domain"
	"github.com/chosundeveloper/rollbook/internal/service"
)

func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.attendanceService.Sessions(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SessionsResponse{Sessions: sessions})
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("날짜를 입력해 주세요."))
		return
	}

	session, err := h.attendanceService.CreateSession(r.Context(), req.Date, req.Title)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SessionResponse{Session: *session})
}

func (h *Handler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.handleError(w, &domain.DomainError{Code: "BAD_REQUEST", Message: "date parameter is required"})
		return
	}

	entries, err := h.attendanceService.ByDate(r.Context(), date)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(AttendanceResponse{
		Entries: entries,
		Summary: service.Summarize(entries),
	})
}

func (h *Handler) SaveAttendance(w http.ResponseWriter, r *http.Request) {
	var req SaveAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("날짜를 입력해 주세요."))
		return
	}

	entries, err := h.attendanceService.ReplaceForDate(r.Context(), req.Date, httpEntriesToDomain(req.Entries))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(AttendanceResponse{
		Entries: entries,
		Summary: service.Summarize(entries),
	})
}
