//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chosundeveloper/rollbook/internal/domain"
	"github.com/chosundeveloper/rollbook/internal/repository/document"
)

func TestPostgresStore_CollectionRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	t.Run("저장한 문서를 그대로 다시 읽는다", func(t *testing.T) {
		type doc struct {
			Items []string `json:"items"`
		}

		require.NoError(t, store.Save(ctx, "members", doc{Items: []string{"a", "b"}}))

		var loaded doc
		require.NoError(t, store.Load(ctx, "members", &loaded))
		assert.Equal(t, []string{"a", "b"}, loaded.Items)
	})

	t.Run("없는 컬렉션은 기본 문서로 만들어진다", func(t *testing.T) {
		type doc struct {
			Items []string `json:"items"`
		}

		fresh := doc{Items: []string{}}
		require.NoError(t, store.Load(ctx, "fresh-collection", &fresh))
		assert.Empty(t, fresh.Items)
	})
}

func TestPostgresStore_DocumentRepositories(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	t.Run("멤버 저장과 조회", func(t *testing.T) {
		repo := document.NewMemberRepository(store)

		require.NoError(t, repo.Insert(ctx, domain.Member{ID: "mem-1", Name: "홍길동", IsActive: true}))

		member, err := repo.GetByID(ctx, "mem-1")
		require.NoError(t, err)
		require.NotNil(t, member)
		assert.Equal(t, "홍길동", member.Name)
	})

	t.Run("출석 기록의 날짜 단위 교체", func(t *testing.T) {
		repo := document.NewAttendanceRepository(store)

		require.NoError(t, repo.ReplaceForDate(ctx, "2025-03-09", []domain.AttendanceEntry{
			{ID: "att-1", Date: "2025-03-09", Status: domain.StatusOnline},
			{ID: "att-2", Date: "2025-03-09", Status: domain.StatusAbsent},
		}))
		require.NoError(t, repo.ReplaceForDate(ctx, "2025-03-09", []domain.AttendanceEntry{
			{ID: "att-3", Date: "2025-03-09", Status: domain.StatusOffline},
		}))

		entries, err := repo.GetByDate(ctx, "2025-03-09")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "att-3", entries[0].ID)
	})

	t.Run("셀 수정이 문서에 반영된다", func(t *testing.T) {
		repo := document.NewCellRepository(store)

		require.NoError(t, repo.Insert(ctx, domain.Cell{
			ID:       "cell-1",
			Number:   1,
			Name:     "홍길동셀",
			LeaderID: "mem-1",
			Members:  []domain.CellAssignment{{MemberID: "mem-1", Role: domain.RoleLeader}},
		}))

		cell, err := repo.GetByID(ctx, "cell-1")
		require.NoError(t, err)
		require.NotNil(t, cell)

		cell.UpsertAssignment("mem-2", domain.RoleMember)
		require.NoError(t, repo.Update(ctx, *cell))

		updated, err := repo.GetByID(ctx, "cell-1")
		require.NoError(t, err)
		require.Len(t, updated.Members, 2)
	})
}
