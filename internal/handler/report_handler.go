package handler

import (
	"encoding/json"
	"net/http"

	"github.com/chosundeveloper/rollbook/internal/domain"
)

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportService.List(r.Context(), r.URL.Query().Get("cellId"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ReportsResponse{Reports: reports})
}

func (h *Handler) SaveReport(w http.ResponseWriter, r *http.Request) {
	var req SaveReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("셀 ID가 필요합니다."))
		return
	}

	report, err := h.reportService.Save(r.Context(), req.CellID, req.WeekStartDate, httpReportsToDomain(req.MemberReports))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ReportResponse{Report: *report})
}
