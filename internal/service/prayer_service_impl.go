package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chosundeveloper/rollbook/internal/dateutil"
	"github.com/chosundeveloper/rollbook/internal/domain"
	"github.com/chosundeveloper/rollbook/internal/repository"
)

type prayerService struct {
	scheduleRepo repository.PrayerScheduleRepository
	checkRepo    repository.PrayerCheckRepository
	cellRepo     repository.CellRepository
}

func NewPrayerService(
	scheduleRepo repository.PrayerScheduleRepository,
	checkRepo repository.PrayerCheckRepository,
	cellRepo repository.CellRepository,
) PrayerService {
	return &prayerService{
		scheduleRepo: scheduleRepo,
		checkRepo:    checkRepo,
		cellRepo:     cellRepo,
	}
}

func (s *prayerService) Schedules(ctx context.Context) ([]domain.PrayerSchedule, error) {
	return s.scheduleRepo.GetAll(ctx)
}

func (s *prayerService) ScheduleByID(ctx context.Context, id string) (*domain.PrayerSchedule, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, &domain.DomainError{Code: "NOT_FOUND", Message: "기도회를 찾을 수 없습니다."}
	}
	return schedule, nil
}

func (s *prayerService) CreateSchedule(ctx context.Context, name, startDate, endDate string, times []domain.NewPrayerTime) (*domain.PrayerSchedule, error) {
	name = strings.TrimSpace(name)
	if name == "" || startDate == "" || endDate == "" {
		return nil, domain.NewValidationError("이름과 기간을 입력해 주세요.")
	}
	start, err := dateutil.Normalize(startDate)
	if err != nil {
		return nil, err
	}
	end, err := dateutil.Normalize(endDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	schedule := domain.PrayerSchedule{
		ID:        "ps-" + uuid.NewString(),
		Name:      name,
		StartDate: start,
		EndDate:   end,
		Times:     make([]domain.PrayerTime, 0, len(times)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, t := range times {
		schedule.Times = append(schedule.Times, domain.PrayerTime{
			ID:    "pt-" + uuid.NewString(),
			Label: t.Label,
			Time:  t.Time,
		})
	}

	if err := s.scheduleRepo.Insert(ctx, schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (s *prayerService) Checks(ctx context.Context, scheduleID, cellID string) ([]domain.PrayerCheckEntry, error) {
	return s.checkRepo.GetBySchedule(ctx, scheduleID, cellID)
}

func (s *prayerService) SaveChecks(ctx context.Context, scheduleID, cellID string, entries []domain.PrayerCheckPayload) error {
	if scheduleID == "" || cellID == "" {
		return domain.NewValidationError("기도회 ID와 셀 ID가 필요합니다.")
	}

	now := time.Now()
	checks := make([]domain.PrayerCheckEntry, 0, len(entries))
	for _, entry := range entries {
		checks = append(checks, domain.PrayerCheckEntry{
			ID:         "pc-" + uuid.NewString(),
			ScheduleID: scheduleID,
			CellID:     cellID,
			MemberID:   entry.MemberID,
			MemberName: entry.MemberName,
			Date:       entry.Date,
			TimeID:     entry.TimeID,
			Checked:    entry.Checked,
			Note:       entry.Note,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	return s.checkRepo.ReplaceForCell(ctx, scheduleID, cellID, checks)
}

func (s *prayerService) CellSummaries(ctx context.Context, scheduleID string) ([]domain.CellPrayerSummary, error) {
	schedule, err := s.ScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	cells, err := s.cellRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	checks, err := s.checkRepo.GetBySchedule(ctx, scheduleID, "")
	if err != nil {
		return nil, err
	}

	dates := dateutil.ExpandRange(schedule.StartDate, schedule.EndDate)
	dateSet := make(map[string]bool, len(dates))
	for _, d := range dates {
		dateSet[d] = true
	}
	timeSet := make(map[string]bool, len(schedule.Times))
	for _, t := range schedule.Times {
		timeSet[t.ID] = true
	}

	summaries := make([]domain.CellPrayerSummary, 0, len(cells))
	for _, cell := range cells {
		memberSet := make(map[string]bool, len(cell.Members))
		for _, assignment := range cell.Members {
			memberSet[assignment.MemberID] = true
		}

		checked := 0
		for _, check := range checks {
			if check.CellID != cell.ID || !check.Checked {
				continue
			}
			// 우주 밖의 체크는 세지 않는다 (탈퇴 멤버, 기간 밖 날짜 등)
			if !memberSet[check.MemberID] || !dateSet[check.Date] || !timeSet[check.TimeID] {
				continue
			}
			checked++
		}

		total := len(memberSet) * len(dates) * len(schedule.Times)
		rate := 0
		if total > 0 {
			rate = int(math.Round(float64(checked) / float64(total) * 100))
		}

		summaries = append(summaries, domain.CellPrayerSummary{
			CellID:       cell.ID,
			CellName:     cell.Name,
			MemberCount:  len(memberSet),
			TotalSlots:   total,
			CheckedCount: checked,
			Rate:         rate,
		})
	}
	return summaries, nil
}
