package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/chosundeveloper/rollbook/internal/domain"
)

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) GetAll(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) Insert(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

type MockCellRepository struct {
	mock.Mock
}

func (m *MockCellRepository) GetAll(ctx context.Context) ([]domain.Cell, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cell), args.Error(1)
}

func (m *MockCellRepository) GetByID(ctx context.Context, id string) (*domain.Cell, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cell), args.Error(1)
}

func (m *MockCellRepository) Insert(ctx context.Context, cell domain.Cell) error {
	args := m.Called(ctx, cell)
	return args.Error(0)
}

func (m *MockCellRepository) Update(ctx context.Context, cell domain.Cell) error {
	args := m.Called(ctx, cell)
	return args.Error(0)
}

func (m *MockCellRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) GetAll(ctx context.Context) ([]domain.AttendanceSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceSession), args.Error(1)
}

func (m *MockSessionRepository) ExistsForDate(ctx context.Context, date string) (bool, error) {
	args := m.Called(ctx, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionRepository) Insert(ctx context.Context, session domain.AttendanceSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) GetByDate(ctx context.Context, date string) ([]domain.AttendanceEntry, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceEntry), args.Error(1)
}

func (m *MockAttendanceRepository) ReplaceForDate(ctx context.Context, date string, entries []domain.AttendanceEntry) error {
	args := m.Called(ctx, date, entries)
	return args.Error(0)
}

type MockPrayerScheduleRepository struct {
	mock.Mock
}

func (m *MockPrayerScheduleRepository) GetAll(ctx context.Context) ([]domain.PrayerSchedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PrayerSchedule), args.Error(1)
}

func (m *MockPrayerScheduleRepository) GetByID(ctx context.Context, id string) (*domain.PrayerSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PrayerSchedule), args.Error(1)
}

func (m *MockPrayerScheduleRepository) Insert(ctx context.Context, schedule domain.PrayerSchedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

type MockPrayerCheckRepository struct {
	mock.Mock
}

func (m *MockPrayerCheckRepository) GetBySchedule(ctx context.Context, scheduleID, cellID string) ([]domain.PrayerCheckEntry, error) {
	args := m.Called(ctx, scheduleID, cellID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PrayerCheckEntry), args.Error(1)
}

func (m *MockPrayerCheckRepository) ReplaceForCell(ctx context.Context, scheduleID, cellID string, entries []domain.PrayerCheckEntry) error {
	args := m.Called(ctx, scheduleID, cellID, entries)
	return args.Error(0)
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) GetAll(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) Insert(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) GetAll(ctx context.Context, cellID string) ([]domain.WeeklyReport, error) {
	args := m.Called(ctx, cellID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WeeklyReport), args.Error(1)
}

func (m *MockReportRepository) GetByWeek(ctx context.Context, cellID, weekStartDate string) (*domain.WeeklyReport, error) {
	args := m.Called(ctx, cellID, weekStartDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyReport), args.Error(1)
}

func (m *MockReportRepository) Upsert(ctx context.Context, report domain.WeeklyReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}
