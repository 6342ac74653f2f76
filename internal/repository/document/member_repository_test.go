package document

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chosundeveloper/rollbook/internal/domain"
	"github.com/chosundeveloper/rollbook/internal/store/memory"
)

func TestMemberRepository(t *testing.T) {
	t.Run("빈 저장소는 빈 목록을 반환한다", func(t *testing.T) {
		repo := NewMemberRepository(memory.NewStore())

		members, err := repo.GetAll(context.Background())

		require.NoError(t, err)
		assert.Empty(t, members)
	})

	t.Run("넣은 멤버를 id로 찾는다", func(t *testing.T) {
		repo := NewMemberRepository(memory.NewStore())
		ctx := context.Background()

		require.NoError(t, repo.Insert(ctx, domain.Member{ID: "mem-1", Name: "홍길동", IsActive: true}))
		require.NoError(t, repo.Insert(ctx, domain.Member{ID: "mem-2", Name: "김철수", IsActive: true}))

		member, err := repo.GetByID(ctx, "mem-2")

		require.NoError(t, err)
		require.NotNil(t, member)
		assert.Equal(t, "김철수", member.Name)
	})

	t.Run("문서는 이름순으로 저장된다", func(t *testing.T) {
		repo := NewMemberRepository(memory.NewStore())
		ctx := context.Background()

		require.NoError(t, repo.Insert(ctx, domain.Member{ID: "mem-1", Name: "홍길동", IsActive: true}))
		require.NoError(t, repo.Insert(ctx, domain.Member{ID: "mem-2", Name: "강감찬", IsActive: true}))
		require.NoError(t, repo.Insert(ctx, domain.Member{ID: "mem-3", Name: "이순신", IsActive: true}))

		members, err := repo.GetAll(ctx)

		require.NoError(t, err)
		require.Len(t, members, 3)
		assert.Equal(t, "강감찬", members[0].Name)
		assert.Equal(t, "이순신", members[1].Name)
		assert.Equal(t, "홍길동", members[2].Name)
	})

	t.Run("없는 id는 (nil, nil)이다", func(t *testing.T) {
		repo := NewMemberRepository(memory.NewStore())

		member, err := repo.GetByID(context.Background(), "mem-404")

		require.NoError(t, err)
		assert.Nil(t, member)
	})
}
