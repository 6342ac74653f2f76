package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/chosundeveloper/rollbook/internal/domain"
	"github.com/chosundeveloper/rollbook/internal/repository"
)

const bcryptCost = 10

type accountService struct {
	accountRepo repository.AccountRepository
}

func NewAccountService(accountRepo repository.AccountRepository) AccountService {
	return &accountService{accountRepo: accountRepo}
}

func errAccountNotFound() *domain.DomainError {
	return &domain.DomainError{Code: "NOT_FOUND", Message: "계정을 찾을 수 없습니다."}
}

func (s *accountService) List(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		accounts[i].PasswordHash = ""
	}
	return accounts, nil
}

func (s *accountService) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return s.accountRepo.GetByUsername(ctx, username)
}

func (s *accountService) Authenticate(ctx context.Context, username, password string) (*domain.Account, error) {
	account, err := s.accountRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	return account, nil
}

func (s *accountService) Create(ctx context.Context, username, password, displayName string, roles []string, cellID string) (*domain.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.NewValidationError("아이디와 비밀번호는 필수입니다.")
	}

	existing, err := s.accountRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		roles = []string{"leader"}
	}

	account := domain.Account{
		ID:           uuid.NewString(),
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: string(hash),
		Roles:        roles,
		CellID:       cellID,
	}

	if err := s.accountRepo.Insert(ctx, account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *accountService) Update(ctx context.Context, id string, updates domain.AccountUpdate) (*domain.Account, error) {
	accounts, err := s.accountRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var account *domain.Account
	for i := range accounts {
		if accounts[i].ID == id {
			account = &accounts[i]
			break
		}
	}
	if account == nil {
		return nil, errAccountNotFound()
	}

	if updates.DisplayName != nil {
		account.DisplayName = *updates.DisplayName
	}
	if updates.Password != nil && *updates.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*updates.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = string(hash)
	}
	if updates.Roles != nil {
		account.Roles = *updates.Roles
	}
	if updates.CellID != nil {
		account.CellID = *updates.CellID
	}

	if err := s.accountRepo.Update(ctx, *account); err != nil {
		if err == repository.ErrNotExists {
			return nil, errAccountNotFound()
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) Delete(ctx context.Context, id string) error {
	err := s.accountRepo.Delete(ctx, id)
	if err == repository.ErrNotExists {
		return errAccountNotFound()
	}
	return err
}
