package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/chosundeveloper/rollbook/internal/domain"
	"github.com/chosundeveloper/rollbook/internal/repository"
)

type cellService struct {
	cellRepo   repository.CellRepository
	memberRepo repository.MemberRepository
}

func NewCellService(cellRepo repository.CellRepository, memberRepo repository.MemberRepository) CellService {
	return &cellService{
		cellRepo:   cellRepo,
		memberRepo: memberRepo,
	}
}

func errCellNotFound() *domain.DomainError {
	return &domain.DomainError{Code: "NOT_FOUND", Message: "셀을 찾을 수 없습니다."}
}

func (s *cellService) List(ctx context.Context) ([]domain.Cell, error) {
	return s.cellRepo.GetAll(ctx)
}

func (s *cellService) ListWithRoster(ctx context.Context) ([]domain.HydratedCell, error) {
	cells, err := s.cellRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	members, err := s.memberRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	memberByID := make(map[string]domain.Member, len(members))
	for _, member := range members {
		memberByID[member.ID] = member
	}

	hydrated := make([]domain.HydratedCell, 0, len(cells))
	for _, cell := range cells {
		roster := make([]domain.RosterEntry, 0, len(cell.Members))
		for _, assignment := range cell.Members {
			entry := domain.RosterEntry{Role: assignment.Role}
			if member, ok := memberByID[assignment.MemberID]; ok {
				m := member
				entry.Member = &m
			}
			roster = append(roster, entry)
		}
		hydrated = append(hydrated, domain.HydratedCell{Cell: cell, Roster: roster})
	}
	return hydrated, nil
}

func (s *cellService) Create(ctx context.Context, leaderID, leaderName string) (*domain.Cell, error) {
	leaderID = strings.TrimSpace(leaderID)
	leaderName = strings.TrimSpace(leaderName)
	if leaderID == "" || leaderName == "" {
		return nil, domain.NewValidationError("셀장 ID와 이름이 필요합니다.")
	}

	cells, err := s.cellRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	number := 1
	for _, cell := range cells {
		if cell.Number >= number {
			number = cell.Number + 1
		}
	}

	cell := domain.Cell{
		ID:       "cell-" + uuid.NewString(),
		Number:   number,
		Name:     leaderName + "셀",
		LeaderID: leaderID,
		Members: []domain.CellAssignment{
			{MemberID: leaderID, Role: domain.RoleLeader},
		},
	}

	if err := s.cellRepo.Insert(ctx, cell); err != nil {
		return nil, err
	}
	return &cell, nil
}

func (s *cellService) Update(ctx context.Context, id, leaderID, leaderName string) (*domain.Cell, error) {
	leaderID = strings.TrimSpace(leaderID)
	leaderName = strings.TrimSpace(leaderName)
	if leaderID == "" || leaderName == "" {
		return nil, domain.NewValidationError("셀장 ID와 이름이 필요합니다.")
	}

	cell, err := s.cellRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cell == nil {
		return nil, errCellNotFound()
	}

	cell.ReplaceLeader(leaderID)
	cell.Name = leaderName + "셀"

	if err := s.cellRepo.Update(ctx, *cell); err != nil {
		return nil, err
	}
	return cell, nil
}

func (s *cellService) Delete(ctx context.Context, id string) error {
	err := s.cellRepo.Delete(ctx, id)
	if err == repository.ErrNotExists {
		return errCellNotFound()
	}
	return err
}

func (s *cellService) AddMember(ctx context.Context, cellID, memberID string, role domain.CellRole) (*domain.Cell, error) {
	if cellID == "" || memberID == "" {
		return nil, domain.NewValidationError("셀 ID와 멤버 ID가 필요합니다.")
	}
	if !domain.ValidCellRole(role) {
		return nil, domain.NewValidationError("올바른 역할이 아닙니다.")
	}

	cell, err := s.cellRepo.GetByID(ctx, cellID)
	if err != nil {
		return nil, err
	}
	if cell == nil {
		return nil, errCellNotFound()
	}

	// 한 멤버는 한 셀에만 소속된다. 같은 셀 재추가는 역할 변경으로 처리
	if !cell.HasMember(memberID) {
		cells, err := s.cellRepo.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, other := range cells {
			if other.ID != cellID && other.HasMember(memberID) {
				return nil, domain.NewValidationError("이미 다른 셀에 소속된 멤버입니다.")
			}
		}
	}

	cell.UpsertAssignment(memberID, role)
	if err := s.cellRepo.Update(ctx, *cell); err != nil {
		return nil, err
	}
	return cell, nil
}

func (s *cellService) RemoveMember(ctx context.Context, cellID, memberID string) error {
	cell, err := s.cellRepo.GetByID(ctx, cellID)
	if err != nil {
		return err
	}
	if cell == nil || !cell.RemoveAssignment(memberID) {
		return &domain.DomainError{Code: "NOT_FOUND", Message: "셀 또는 멤버를 찾을 수 없습니다."}
	}
	return s.cellRepo.Update(ctx, *cell)
}
