package document

import (
	"context"
	"sort"
	"sync"

	"github.com/chosundeveloper/rollbook/internal/domain"
	"github.com/chosundeveloper/rollbook/internal/store"
)

type sessionsDoc struct {
	Sessions []domain.AttendanceSession `json:"sessions"`
}

type sessionRepository struct {
	store store.Store
	mu    sync.Mutex
}

func NewSessionRepository(s store.Store) *sessionRepository {
	return &sessionRepository{store: s}
}

func (r *sessionRepository) load(ctx context.Context) (*sessionsDoc, error) {
	doc := &sessionsDoc{Sessions: []domain.AttendanceSession{}}
	if err := r.store.Load(ctx, store.KeySessions, doc); err != nil {
		return nil, err
	}
	if doc.Sessions == nil {
		doc.Sessions = []domain.AttendanceSession{}
	}
	return doc, nil
}

func (r *sessionRepository) GetAll(ctx context.Context) ([]domain.AttendanceSession, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	sessions := doc.Sessions
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Date > sessions[j].Date
	})
	return sessions, nil
}

func (r *sessionRepository) ExistsForDate(ctx context.Context, date string) (bool, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	for i := range doc.Sessions {
		if doc.Sessions[i].Date == date {
			return true, nil
		}
	}
	return false, nil
}

func (r *sessionRepository) Insert(ctx context.Context, session domain.AttendanceSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	doc.Sessions = append(doc.Sessions, session)
	sort.Slice(doc.Sessions, func(i, j int) bool {
		return doc.Sessions[i].Date > doc.Sessions[j].Date
	})
	return r.store.Save(ctx, store.KeySessions, doc)
}
