package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/chosundeveloper/rollbook/internal/dateutil"
	"github.com/chosundeveloper/rollbook/internal/domain"
	"github.com/chosundeveloper/rollbook/internal/repository"
)

type memberService struct {
	memberRepo repository.MemberRepository
}

func NewMemberService(memberRepo repository.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

func (s *memberService) List(ctx context.Context) ([]domain.Member, error) {
	members, err := s.memberRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]domain.Member, 0, len(members))
	for _, member := range members {
		if member.IsActive {
			active = append(active, member)
		}
	}
	// Collator는 비교 중 내부 상태를 바꾸므로 요청 간에 공유하면 안 된다
	collator := collate.New(language.Korean)
	sort.SliceStable(active, func(i, j int) bool {
		return collator.CompareString(active[i].Name, active[j].Name) < 0
	})
	return active, nil
}

func (s *memberService) Add(ctx context.Context, payload domain.NewMemberPayload) (*domain.Member, error) {
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return nil, domain.NewValidationError("Name is required")
	}

	joinedAt := strings.TrimSpace(payload.JoinedAt)
	if joinedAt == "" {
		joinedAt = dateutil.Today()
	}

	member := domain.Member{
		ID:        "mem-" + uuid.NewString(),
		Name:      name,
		BirthYear: payload.BirthYear,
		Team:      strings.TrimSpace(payload.Team),
		Contact:   strings.TrimSpace(payload.Contact),
		Role:      strings.TrimSpace(payload.Role),
		IsActive:  true,
		JoinedAt:  joinedAt,
	}

	if err := s.memberRepo.Insert(ctx, member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *memberService) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	return s.memberRepo.GetByID(ctx, id)
}
