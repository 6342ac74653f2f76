package server

import (
	"net/http"

	"github.com/chosundeveloper/rollbook/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /api/session", h.Login)
	mux.HandleFunc("DELETE /api/session", h.Logout)
	mux.HandleFunc("GET /api/session/me", h.Me)

	mux.HandleFunc("GET /api/members", h.RequireAuth(h.ListMembers))
	mux.HandleFunc("POST /api/members", h.RequireAuth(h.AddMember))

	mux.HandleFunc("GET /api/cells", h.RequireAuth(h.ListCells))
	mux.HandleFunc("POST /api/cells", h.RequireAdmin(h.CreateCell))
	mux.HandleFunc("PUT /api/cells", h.RequireAdmin(h.UpdateCell))
	mux.HandleFunc("DELETE /api/cells", h.RequireAdmin(h.DeleteCell))
	mux.HandleFunc("POST /api/cells/members", h.RequireAuth(h.AddCellMember))
	mux.HandleFunc("DELETE /api/cells/members", h.RequireAuth(h.RemoveCellMember))

	mux.HandleFunc("GET /api/sessions", h.RequireAuth(h.ListSessions))
	mux.HandleFunc("POST /api/sessions", h.RequireAuth(h.CreateSession))
	mux.HandleFunc("GET /api/attendance", h.RequireAuth(h.GetAttendance))
	mux.HandleFunc("PUT /api/attendance", h.RequireAuth(h.SaveAttendance))

	mux.HandleFunc("GET /api/prayer-schedules", h.RequireAuth(h.ListSchedules))
	mux.HandleFunc("POST /api/prayer-schedules", h.RequireAdmin(h.CreateSchedule))
	mux.HandleFunc("GET /api/prayer-schedules/{id}/summary", h.RequireAdmin(h.ScheduleSummary))
	mux.HandleFunc("GET /api/prayer-checks", h.RequireAuth(h.GetPrayerChecks))
	mux.HandleFunc("POST /api/prayer-checks", h.RequireAuth(h.SavePrayerChecks))

	mux.HandleFunc("GET /api/reports", h.RequireAuth(h.ListReports))
	mux.HandleFunc("POST /api/reports", h.RequireAuth(h.SaveReport))

	mux.HandleFunc("GET /api/accounts", h.RequireAdmin(h.ListAccounts))
	mux.HandleFunc("POST /api/accounts", h.RequireAdmin(h.CreateAccount))
	mux.HandleFunc("PUT /api/accounts", h.RequireAdmin(h.UpdateAccount))
	mux.HandleFunc("DELETE /api/accounts", h.RequireAdmin(h.DeleteAccount))
}
