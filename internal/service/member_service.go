package service

import (
	"context"

	"github.com/chosundeveloper/rollbook/internal/domain"
)

type MemberService interface {
	// List는 활성 멤버를 이름순으로 반환한다
	List(ctx context.Context) ([]domain.Member, error)

	// Add는 새 멤버를 등록한다. 이름이 비어 있으면 실패한다
	Add(ctx context.Context, payload domain.NewMemberPayload) (*domain.Member, error)

	// GetByID는 비활성 멤버도 조회한다 (과거 출석 기록 hydration용).
	// 없으면 (nil, nil)을 반환한다
	GetByID(ctx context.Context, id string) (*domain.Member, error)
}
