package service

import (
	"context"

	"github.com/chosundeveloper/rollbook/internal/domain"
)

type AccountService interface {
	// List는 비밀번호 해시를 제거한 계정 목록을 반환한다
	List(ctx context.Context) ([]domain.Account, error)

	// GetByUsername은 대소문자를 무시하고 조회한다. 없으면 (nil, nil)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)

	// Authenticate는 아이디/비밀번호를 검증한다. 실패하면 ErrUnauthorized
	Authenticate(ctx context.Context, username, password string) (*domain.Account, error)

	// Create는 아이디 중복이면 실패한다. 역할 기본값은 leader
	Create(ctx context.Context, username, password, displayName string, roles []string, cellID string) (*domain.Account, error)

	Update(ctx context.Context, id string, updates domain.AccountUpdate) (*domain.Account, error)

	Delete(ctx context.Context, id string) error
}
