package document

import (
	"context"
	"sync"

	"github.com/chosundeveloper/rollbook/internal/domain"
	"github.com/chosundeveloper/rollbook/internal/store"
)

type attendanceDoc struct {
	Entries []domain.AttendanceEntry `json:"entries"`
}

type attendanceRepository struct {
	store store.Store
	mu    sync.Mutex
}

func NewAttendanceRepository(s store.Store) *attendanceRepository {
	return &attendanceRepository{store: s}
}

func (r *attendanceRepository) load(ctx context.Context) (*attendanceDoc, error) {
	doc := &attendanceDoc{Entries: []domain.AttendanceEntry{}}
	if err := r.store.Load(ctx, store.KeyAttendance, doc); err != nil {
		return nil, err
	}
	if doc.Entries == nil {
		doc.Entries = []domain.AttendanceEntry{}
	}
	return doc, nil
}

func (r *attendanceRepository) GetByDate(ctx context.Context, date string) ([]domain.AttendanceEntry, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.AttendanceEntry, 0, len(doc.Entries))
	for _, entry := range doc.Entries {
		if entry.Date == date {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (r *attendanceRepository) ReplaceForDate(ctx context.Context, date string, entries []domain.AttendanceEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return err
	}

	others := make([]domain.AttendanceEntry, 0, len(doc.Entries))
	for _, entry := range doc.Entries {
		if entry.Date != date {
			others = append(others, entry)
		}
	}
	doc.Entries = append(others, entries...)
	return r.store.Save(ctx, store.KeyAttendance, doc)
}
