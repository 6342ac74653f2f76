package document

import (
	"context"
	"sync"

	"github.com/chosundeveloper/rollbook/internal/domain"
	"github.com/chosundeveloper/rollbook/internal/repository"
	"github.com/chosundeveloper/rollbook/internal/store"
)

type cellsDoc struct {
	Cells []domain.Cell `json:"cells"`
}

type cellRepository struct {
	store store.Store
	mu    sync.Mutex
}

func NewCellRepository(s store.Store) *cellRepository {
	return &cellRepository{store: s}
}

func (r *cellRepository) load(ctx context.Context) (*cellsDoc, error) {
	doc := &cellsDoc{Cells: []domain.Cell{}}
	if err := r.store.Load(ctx, store.KeyCells, doc); err != nil {
		return nil, err
	}
	if doc.Cells == nil {
		doc.Cells = []domain.Cell{}
	}
	return doc, nil
}

func (r *cellRepository) GetAll(ctx context.Context) ([]domain.Cell, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Cells, nil
}

func (r *cellRepository) GetByID(ctx context.Context, id string) (*domain.Cell, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doc.Cells {
		if doc.Cells[i].ID == id {
			cell := doc.Cells[i]
			return &cell, nil
		}
	}
	return nil, nil
}

func (r *cellRepository) Insert(ctx context.Context, cell domain.Cell) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	doc.Cells = append(doc.Cells, cell)
	return r.store.Save(ctx, store.KeyCells, doc)
}

func (r *cellRepository) Update(ctx context.Context, cell domain.Cell) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range doc.Cells {
		if doc.Cells[i].ID == cell.ID {
			doc.Cells[i] = cell
			return r.store.Save(ctx, store.KeyCells, doc)
		}
	}
	return repository.ErrNotExists
}

func (r *cellRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range doc.Cells {
		if doc.Cells[i].ID == id {
			doc.Cells = append(doc.Cells[:i], doc.Cells[i+1:]...)
			return r.store.Save(ctx, store.KeyCells, doc)
		}
	}
	return repository.ErrNotExists
}
