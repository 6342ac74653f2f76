package handler

import (
	"go.uber.org/zap"

	"github.com/chosundeveloper/rollbook/internal/auth"
	"github.com/chosundeveloper/rollbook/internal/service"
)

const sessionCookieName = "rb-session"

type Handler struct {
	memberService     service.MemberService
	cellService       service.CellService
	attendanceService service.AttendanceService
	prayerService     service.PrayerService
	accountService    service.AccountService
	reportService     service.ReportService
	authority         *auth.Authority
	log               *zap.Logger
}

func NewHandler(
	memberService service.MemberService,
	cellService service.CellService,
	attendanceService service.AttendanceService,
	prayerService service.PrayerService,
	accountService service.AccountService,
	reportService service.ReportService,
	authority *auth.Authority,
	log *zap.Logger,
) *Handler {
	return &Handler{
		memberService:     memberService,
		cellService:       cellService,
		attendanceService: attendanceService,
		prayerService:     prayerService,
		accountService:    accountService,
		reportService:     reportService,
		authority:         authority,
		log:               log,
	}
}
