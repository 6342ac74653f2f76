package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chosundeveloper/rollbook/internal/dateutil"
	"github.com/chosundeveloper/rollbook/internal/domain"
	"github.com/chosundeveloper/rollbook/internal/repository"
)

type attendanceService struct {
	sessionRepo    repository.SessionRepository
	attendanceRepo repository.AttendanceRepository
	memberRepo     repository.MemberRepository
}

func NewAttendanceService(
	sessionRepo repository.SessionRepository,
	attendanceRepo repository.AttendanceRepository,
	memberRepo repository.MemberRepository,
) AttendanceService {
	return &attendanceService{
		sessionRepo:    sessionRepo,
		attendanceRepo: attendanceRepo,
		memberRepo:     memberRepo,
	}
}

func (s *attendanceService) Sessions(ctx context.Context) ([]domain.AttendanceSession, error) {
	return s.sessionRepo.GetAll(ctx)
}

func (s *attendanceService) CreateSession(ctx context.Context, date, title string) (*domain.AttendanceSession, error) {
	if date == "" {
		return nil, domain.NewValidationError("날짜를 입력해 주세요.")
	}
	normalized, err := dateutil.Normalize(date)
	if err != nil {
		return nil, err
	}

	exists, err := s.sessionRepo.ExistsForDate(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrSessionExists
	}

	now := time.Now()
	session := domain.AttendanceSession{
		ID:        "session-" + uuid.NewString(),
		Date:      normalized,
		Title:     strings.TrimSpace(title),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.sessionRepo.Insert(ctx, session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *attendanceService) ByDate(ctx context.Context, date string) ([]domain.AttendanceEntry, error) {
	normalized, err := dateutil.Normalize(date)
	if err != nil {
		return nil, err
	}
	return s.attendanceRepo.GetByDate(ctx, normalized)
}

func (s *attendanceService) ReplaceForDate(ctx context.Context, date string, entries []domain.AttendancePayloadEntry) ([]domain.AttendanceEntry, error) {
	normalized, err := dateutil.Normalize(date)
	if err != nil {
		return nil, err
	}

	exists, err := s.sessionRepo.ExistsForDate(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNoSession
	}

	now := time.Now()
	normalizedEntries := make([]domain.AttendanceEntry, 0, len(entries))
	for _, payload := range entries {
		if !domain.ValidAttendanceStatus(payload.Status) {
			return nil, domain.NewValidationError(fmt.Sprintf("Unsupported attendance status: %s", payload.Status))
		}

		displayName, err := s.resolveDisplayName(ctx, payload)
		if err != nil {
			return nil, err
		}

		isVisitor := payload.MemberID == ""
		if payload.IsVisitor != nil {
			isVisitor = *payload.IsVisitor
		}

		normalizedEntries = append(normalizedEntries, domain.AttendanceEntry{
			ID:          "att-" + uuid.NewString(),
			Date:        normalized,
			Status:      payload.Status,
			MemberID:    payload.MemberID,
			DisplayName: displayName,
			Note:        strings.TrimSpace(payload.Note),
			IsVisitor:   isVisitor,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := s.attendanceRepo.ReplaceForDate(ctx, normalized, normalizedEntries); err != nil {
		return nil, err
	}
	return normalizedEntries, nil
}

// resolveDisplayName: 멤버 조회 → 방문자 이름 → "Visitor" 순서
func (s *attendanceService) resolveDisplayName(ctx context.Context, payload domain.AttendancePayloadEntry) (string, error) {
	if payload.MemberID != "" {
		member, err := s.memberRepo.GetByID(ctx, payload.MemberID)
		if err != nil {
			return "", err
		}
		if member != nil {
			return member.Name, nil
		}
	}
	if name := strings.TrimSpace(payload.DisplayName); name != "" {
		return name, nil
	}
	return "Visitor", nil
}
