// Package repository declares typed collection access over the record store.
// Implementations own the read-modify-write cycle per collection; services
// never touch raw documents.
package repository

import (
	"context"
	"errors"

	"github.com/chosundeveloper/rollbook/internal/domain"
)

// ErrNotExists reports an id-based miss on update/delete. Services translate
// it into the user-facing NOT_FOUND taxonomy.
var ErrNotExists = errors.New("record not found")

type MemberRepository interface {
	GetAll(ctx context.Context) ([]domain.Member, error)
	// GetByID returns (nil, nil) on a miss; hydration treats missing members
	// as "unregistered" rather than failing.
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	Insert(ctx context.Context, member domain.Member) error
}

type CellRepository interface {
	GetAll(ctx context.Context) ([]domain.Cell, error)
	GetByID(ctx context.Context, id string) (*domain.Cell, error)
	Insert(ctx context.Context, cell domain.Cell) error
	Update(ctx context.Context, cell domain.Cell) error
	Delete(ctx context.Context, id string) error
}

type SessionRepository interface {
	// GetAll returns sessions sorted by date descending.
	GetAll(ctx context.Context) ([]domain.AttendanceSession, error)
	ExistsForDate(ctx context.Context, date string) (bool, error)
	Insert(ctx context.Context, session domain.AttendanceSession) error
}

type AttendanceRepository interface {
	GetByDate(ctx context.Context, date string) ([]domain.AttendanceEntry, error)
	// ReplaceForDate drops every entry for date and inserts the new set.
	ReplaceForDate(ctx context.Context, date string, entries []domain.AttendanceEntry) error
}

type PrayerScheduleRepository interface {
	// GetAll returns schedules sorted by startDate descending.
	GetAll(ctx context.Context) ([]domain.PrayerSchedule, error)
	GetByID(ctx context.Context, id string) (*domain.PrayerSchedule, error)
	Insert(ctx context.Context, schedule domain.PrayerSchedule) error
}

type PrayerCheckRepository interface {
	// GetBySchedule narrows to one cell when cellID is non-empty.
	GetBySchedule(ctx context.Context, scheduleID, cellID string) ([]domain.PrayerCheckEntry, error)
	// ReplaceForCell drops every entry for the (schedule, cell) pair and
	// inserts the new set.
	ReplaceForCell(ctx context.Context, scheduleID, cellID string, entries []domain.PrayerCheckEntry) error
}

type AccountRepository interface {
	GetAll(ctx context.Context) ([]domain.Account, error)
	// GetByUsername matches case-insensitively and returns (nil, nil) on a miss.
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	Insert(ctx context.Context, account domain.Account) error
	Update(ctx context.Context, account domain.Account) error
	Delete(ctx context.Context, id string) error
}

type ReportRepository interface {
	// GetAll returns reports sorted by weekStartDate descending, narrowed to
	// one cell when cellID is non-empty.
	GetAll(ctx context.Context, cellID string) ([]domain.WeeklyReport, error)
	GetByWeek(ctx context.Context, cellID, weekStartDate string) (*domain.WeeklyReport, error)
	// Upsert replaces the report with the same (cellId, weekStartDate) key or
	// appends a new one.
	Upsert(ctx context.Context, report domain.WeeklyReport) error
}
