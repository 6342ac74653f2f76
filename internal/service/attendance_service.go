package service

import (
	"context"

	"github.com/chosundeveloper/rollbook/internal/domain"
)

type AttendanceService interface {
	// Sessions는 출석부 목록을 날짜 내림차순으로 반환한다
	Sessions(ctx context.Context) ([]domain.AttendanceSession, error)

	// CreateSession은 한 날짜의 출석부를 연다. 날짜 중복이면 실패한다
	CreateSession(ctx context.Context, date, title string) (*domain.AttendanceSession, error)

	// ByDate는 해당 날짜의 출석 기록을 반환한다. 출석부가 없어도
	// 빈 목록을 반환한다 (읽기는 관대하다)
	ByDate(ctx context.Context, date string) ([]domain.AttendanceEntry, error)

	// ReplaceForDate는 해당 날짜의 기록 전체를 교체한다. 출석부가
	// 없으면 실패한다. 제출에서 빠진 멤버의 기록은 사라진다
	ReplaceForDate(ctx context.Context, date string, entries []domain.AttendancePayloadEntry) ([]domain.AttendanceEntry, error)
}

// Summarize는 출석 기록을 상태별로 집계한다. 순수 함수다.
func Summarize(entries []domain.AttendanceEntry) domain.AttendanceSummary {
	var summary domain.AttendanceSummary
	for _, entry := range entries {
		switch entry.Status {
		case domain.StatusOnline:
			summary.Online++
		case domain.StatusOffline:
			summary.Offline++
		case domain.StatusAbsent:
			summary.Absent++
		}
		summary.Total++
	}
	return summary
}
