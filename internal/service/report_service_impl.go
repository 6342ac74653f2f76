package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chosundeveloper/rollbook/internal/dateutil"
	"github.com/chosundeveloper/rollbook/internal/domain"
	"github.com/chosundeveloper/rollbook/internal/repository"
)

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) List(ctx context.Context, cellID string) ([]domain.WeeklyReport, error) {
	return s.reportRepo.GetAll(ctx, cellID)
}

func (s *reportService) Get(ctx context.Context, cellID, weekStartDate string) (*domain.WeeklyReport, error) {
	return s.reportRepo.GetByWeek(ctx, cellID, weekStartDate)
}

func (s *reportService) Save(ctx context.Context, cellID, weekStartDate string, memberReports []domain.MemberReport) (*domain.WeeklyReport, error) {
	if cellID == "" {
		return nil, domain.NewValidationError("셀 ID가 필요합니다.")
	}
	// 주가 생략되면 이번 주로 제출한다
	if weekStartDate == "" {
		weekStartDate, _ = dateutil.CurrentWeek()
	}
	weekStart, err := dateutil.Normalize(weekStartDate)
	if err != nil {
		return nil, err
	}
	_, weekEnd, err := dateutil.WeekBounds(weekStart)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	report := domain.WeeklyReport{
		ID:            "wr-" + uuid.NewString(),
		CellID:        cellID,
		WeekStartDate: weekStart,
		WeekEndDate:   weekEnd,
		MemberReports: memberReports,
		SubmittedAt:   now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// 재제출이면 id와 생성 시각을 유지한다
	existing, err := s.reportRepo.GetByWeek(ctx, cellID, weekStart)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		report.ID = existing.ID
		report.CreatedAt = existing.CreatedAt
	}

	if err := s.reportRepo.Upsert(ctx, report); err != nil {
		return nil, err
	}
	return &report, nil
}
