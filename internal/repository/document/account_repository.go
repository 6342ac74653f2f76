package document

import (
	"context"
	"strings"
	"sync"

	"github.com/chosundeveloper/rollbook/internal/domain"
	"github.com/chosundeveloper/rollbook/internal/repository"
	"github.com/chosundeveloper/rollbook/internal/store"
)

type accountsDoc struct {
	Accounts []domain.Account `json:"accounts"`
}

type accountRepository struct {
	store store.Store
	mu    sync.Mutex
}

func NewAccountRepository(s store.Store) *accountRepository {
	return &accountRepository{store: s}
}

func (r *accountRepository) load(ctx context.Context) (*accountsDoc, error) {
	doc := &accountsDoc{Accounts: []domain.Account{}}
	if err := r.store.Load(ctx, store.KeyAccounts, doc); err != nil {
		return nil, err
	}
	if doc.Accounts == nil {
		doc.Accounts = []domain.Account{}
	}
	return doc, nil
}

func (r *accountRepository) GetAll(ctx context.Context) ([]domain.Account, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Accounts, nil
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	normalized := strings.ToLower(strings.TrimSpace(username))
	for i := range doc.Accounts {
		if strings.ToLower(doc.Accounts[i].Username) == normalized {
			account := doc.Accounts[i]
			return &account, nil
		}
	}
	return nil, nil
}

func (r *accountRepository) Insert(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	doc.Accounts = append(doc.Accounts, account)
	return r.store.Save(ctx, store.KeyAccounts, doc)
}

func (r *accountRepository) Update(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range doc.Accounts {
		if doc.Accounts[i].ID == account.ID {
			doc.Accounts[i] = account
			return r.store.Save(ctx, store.KeyAccounts, doc)
		}
	}
	return repository.ErrNotExists
}

func (r *accountRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range doc.Accounts {
		if doc.Accounts[i].ID == id {
			doc.Accounts = append(doc.Accounts[:i], doc.Accounts[i+1:]...)
			return r.store.Save(ctx, store.KeyAccounts, doc)
		}
	}
	return repository.ErrNotExists
}
