package document

import (
	"context"
	"sort"
	"sync"

	"github.com/chosundeveloper/rollbook/internal/domain"
	"github.com/chosundeveloper/rollbook/internal/store"
)

type schedulesDoc struct {
	Schedules []domain.PrayerSchedule `json:"schedules"`
}

type prayerScheduleRepository struct {
	store store.Store
	mu    sync.Mutex
}

func NewPrayerScheduleRepository(s store.Store) *prayerScheduleRepository {
	return &prayerScheduleRepository{store: s}
}

func (r *prayerScheduleRepository) load(ctx context.Context) (*schedulesDoc, error) {
	doc := &schedulesDoc{Schedules: []domain.PrayerSchedule{}}
	if err := r.store.Load(ctx, store.KeyPrayerSchedules, doc); err != nil {
		return nil, err
	}
	if doc.Schedules == nil {
		doc.Schedules = []domain.PrayerSchedule{}
	}
	return doc, nil
}

func (r *prayerScheduleRepository) GetAll(ctx context.Context) ([]domain.PrayerSchedule, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	schedules := doc.Schedules
	sort.Slice(schedules, func(i, j int) bool {
		return schedules[i].StartDate > schedules[j].StartDate
	})
	return schedules, nil
}

func (r *prayerScheduleRepository) GetByID(ctx context.Context, id string) (*domain.PrayerSchedule, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doc.Schedules {
		if doc.Schedules[i].ID == id {
			schedule := doc.Schedules[i]
			return &schedule, nil
		}
	}
	return nil, nil
}

func (r *prayerScheduleRepository) Insert(ctx context.Context, schedule domain.PrayerSchedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	doc.Schedules = append(doc.Schedules, schedule)
	return r.store.Save(ctx, store.KeyPrayerSchedules, doc)
}

type checksDoc struct {
	Checks []domain.PrayerCheckEntry `json:"checks"`
}

type prayerCheckRepository struct {
	store store.Store
	mu    sync.Mutex
}

func NewPrayerCheckRepository(s store.Store) *prayerCheckRepository {
	return &prayerCheckRepository{store: s}
}

func (r *prayerCheckRepository) load(ctx context.Context) (*checksDoc, error) {
	doc := &checksDoc{Checks: []domain.PrayerCheckEntry{}}
	if err := r.store.Load(ctx, store.KeyPrayerChecks, doc); err != nil {
		return nil, err
	}
	if doc.Checks == nil {
		doc.Checks = []domain.PrayerCheckEntry{}
	}
	return doc, nil
}

func (r *prayerCheckRepository) GetBySchedule(ctx context.Context, scheduleID, cellID string) ([]domain.PrayerCheckEntry, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	checks := make([]domain.PrayerCheckEntry, 0, len(doc.Checks))
	for _, check := range doc.Checks {
		if check.ScheduleID != scheduleID {
			continue
		}
		if cellID != "" && check.CellID != cellID {
			continue
		}
		checks = append(checks, check)
	}
	return checks, nil
}

func (r *prayerCheckRepository) ReplaceForCell(ctx context.Context, scheduleID, cellID string, entries []domain.PrayerCheckEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return err
	}

	others := make([]domain.PrayerCheckEntry, 0, len(doc.Checks))
	for _, check := range doc.Checks {
		if check.ScheduleID == scheduleID && check.CellID == cellID {
			continue
		}
		others = append(others, check)
	}
	doc.Checks = append(others, entries...)
	return r.store.Save(ctx, store.KeyPrayerChecks, doc)
}
