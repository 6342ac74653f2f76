package service

import (
	"context"

	"github.com/chosundeveloper/rollbook/internal/domain"
)

type CellService interface {
	List(ctx context.Context) ([]domain.Cell, error)

	// ListWithRoster는 각 셀의 배정을 멤버 레코드로 hydration한다.
	// 삭제된 멤버는 Member가 nil인 "미등록" 항목으로 표시된다
	ListWithRoster(ctx context.Context) ([]domain.HydratedCell, error)

	// Create는 다음 셀 번호를 배정하고 셀장 이름으로 셀 이름을 만든다
	Create(ctx context.Context, leaderID, leaderName string) (*domain.Cell, error)

	// Update는 셀장 배정을 교체한다. 일반 셀원 배정은 유지된다
	Update(ctx context.Context, id, leaderID, leaderName string) (*domain.Cell, error)

	Delete(ctx context.Context, id string) error

	// AddMember는 배정을 upsert한다 (같은 셀 재추가는 역할 변경).
	// 다른 셀에 이미 소속된 멤버는 거부한다
	AddMember(ctx context.Context, cellID, memberID string, role domain.CellRole) (*domain.Cell, error)

	RemoveMember(ctx context.Context, cellID, memberID string) error
}
