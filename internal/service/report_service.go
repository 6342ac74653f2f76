package service

import (
	"context"

	"github.com/chosundeveloper/rollbook/internal/domain"
)

type ReportService interface {
	// List는 주간 보고서를 주 시작일 내림차순으로 반환한다.
	// cellID가 비어 있으면 전체를 반환한다
	List(ctx context.Context, cellID string) ([]domain.WeeklyReport, error)

	// Get은 (셀, 주) 보고서를 반환한다. 없으면 (nil, nil)
	Get(ctx context.Context, cellID, weekStartDate string) (*domain.WeeklyReport, error)

	// Save는 (셀, 주) 단위로 upsert한다. 재제출하면 셀원 보고가
	// 교체되고 제출 시각이 갱신된다. weekStartDate가 비어 있으면
	// 이번 주의 월요일로 제출된다
	Save(ctx context.Context, cellID, weekStartDate string, memberReports []domain.MemberReport) (*domain.WeeklyReport, error)
}
