package document

import (
	"context"
	"sort"
	"sync"

	"github.com/chosundeveloper/rollbook/internal/domain"
	"github.com/chosundeveloper/rollbook/internal/store"
)

type reportsDoc struct {
	Reports []domain.WeeklyReport `json:"reports"`
}

type reportRepository struct {
	store store.Store
	mu    sync.Mutex
}

func NewReportRepository(s store.Store) *reportRepository {
	return &reportRepository{store: s}
}

func (r *reportRepository) load(ctx context.Context) (*reportsDoc, error) {
	doc := &reportsDoc{Reports: []domain.WeeklyReport{}}
	if err := r.store.Load(ctx, store.KeyWeeklyReports, doc); err != nil {
		return nil, err
	}
	if doc.Reports == nil {
		doc.Reports = []domain.WeeklyReport{}
	}
	return doc, nil
}

func (r *reportRepository) GetAll(ctx context.Context, cellID string) ([]domain.WeeklyReport, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	reports := make([]domain.WeeklyReport, 0, len(doc.Reports))
	for _, report := range doc.Reports {
		if cellID != "" && report.CellID != cellID {
			continue
		}
		reports = append(reports, report)
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].WeekStartDate > reports[j].WeekStartDate
	})
	return reports, nil
}

func (r *reportRepository) GetByWeek(ctx context.Context, cellID, weekStartDate string) (*domain.WeeklyReport, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doc.Reports {
		if doc.Reports[i].CellID == cellID && doc.Reports[i].WeekStartDate == weekStartDate {
			report := doc.Reports[i]
			return &report, nil
		}
	}
	return nil, nil
}

func (r *reportRepository) Upsert(ctx context.Context, report domain.WeeklyReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range doc.Reports {
		if doc.Reports[i].CellID == report.CellID && doc.Reports[i].WeekStartDate == report.WeekStartDate {
			doc.Reports[i] = report
			return r.store.Save(ctx, store.KeyWeeklyReports, doc)
		}
	}
	doc.Reports = append(doc.Reports, report)
	return r.store.Save(ctx, store.KeyWeeklyReports, doc)
}
