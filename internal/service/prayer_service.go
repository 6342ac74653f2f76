package service

import (
	"context"

	"github.com/chosundeveloper/rollbook/internal/domain"
)

type PrayerService interface {
	// Schedules는 기도회 목록을 시작일 내림차순으로 반환한다
	Schedules(ctx context.Context) ([]domain.PrayerSchedule, error)

	ScheduleByID(ctx context.Context, id string) (*domain.PrayerSchedule, error)

	// CreateSchedule은 기도회와 시간대에 새 id를 배정한다.
	// 다른 기도회와의 기간 겹침은 검사하지 않는다
	CreateSchedule(ctx context.Context, name, startDate, endDate string, times []domain.NewPrayerTime) (*domain.PrayerSchedule, error)

	// Checks는 cellID가 비어 있으면 기도회 전체, 아니면 한 셀의 체크만 반환한다
	Checks(ctx context.Context, scheduleID, cellID string) ([]domain.PrayerCheckEntry, error)

	// SaveChecks는 (기도회, 셀) 쌍의 체크 전체를 교체한다. 전송되지
	// 않은 슬롯은 다음 조회에서 미체크로 취급된다
	SaveChecks(ctx context.Context, scheduleID, cellID string, entries []domain.PrayerCheckPayload) error

	// CellSummaries는 셀별 완료율을 집계한다. 슬롯 우주는
	// 셀원 수 × 기간 일수 × 시간대 수이고, 호출할 때마다 다시 계산된다
	CellSummaries(ctx context.Context, scheduleID string) ([]domain.CellPrayerSummary, error)
}
