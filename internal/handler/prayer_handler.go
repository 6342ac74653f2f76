package handler

import (
	"encoding/json"
	"net/http"

	"github.com/chosundeveloper/rollbook/internal/domain"
)

func (h *Handler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.prayerService.Schedules(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SchedulesResponse{Schedules: schedules})
}

func (h *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req CreatePrayerScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("이름과 기간을 입력해 주세요."))
		return
	}

	schedule, err := h.prayerService.CreateSchedule(r.Context(), req.Name, req.StartDate, req.EndDate, httpTimesToDomain(req.Times))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(ScheduleResponse{Schedule: *schedule})
}

func (h *Handler) ScheduleSummary(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.prayerService.CellSummaries(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SummariesResponse{Summaries: summaries})
}

func (h *Handler) GetPrayerChecks(w http.ResponseWriter, r *http.Request) {
	scheduleID := r.URL.Query().Get("scheduleId")
	if scheduleID == "" {
		h.handleError(w, &domain.DomainError{Code: "BAD_REQUEST", Message: "scheduleId parameter is required"})
		return
	}

	checks, err := h.prayerService.Checks(r.Context(), scheduleID, r.URL.Query().Get("cellId"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ChecksResponse{Checks: checks})
}

func (h *Handler) SavePrayerChecks(w http.ResponseWriter, r *http.Request) {
	var req SavePrayerChecksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("기도회 ID와 셀 ID가 필요합니다."))
		return
	}

	if err := h.prayerService.SaveChecks(r.Context(), req.ScheduleID, req.CellID, httpChecksToDomain(req.Entries)); err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(OkResponse{Ok: true})
}
