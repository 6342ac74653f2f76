package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chosundeveloper/rollbook/internal/domain"
)

func TestMemberService_List(t *testing.T) {
	t.Run("비활성 멤버는 제외하고 이름순으로 정렬한다", func(t *testing.T) {
		mockRepo := new(MockMemberRepository)
		service := NewMemberService(mockRepo)
		ctx := context.Background()

		mockRepo.On("GetAll", mock.Anything).Return([]domain.Member{
			{ID: "m1", Name: "홍길동", IsActive: true},
			{ID: "m2", Name: "강감찬", IsActive: true},
			{ID: "m3", Name: "이순신", IsActive: false},
		}, nil).Once()

		result, err := service.List(ctx)

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "강감찬", result[0].Name)
		assert.Equal(t, "홍길동", result[1].Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("동시 호출에도 정렬이 안전하다", func(t *testing.T) {
		mockRepo := new(MockMemberRepository)
		service := NewMemberService(mockRepo)
		ctx := context.Background()

		mockRepo.On("GetAll", mock.Anything).Return([]domain.Member{
			{ID: "m1", Name: "홍길동", IsActive: true},
			{ID: "m2", Name: "강감찬", IsActive: true},
			{ID: "m3", Name: "이순신", IsActive: true},
			{ID: "m4", Name: "김유신", IsActive: true},
		}, nil)

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 50 {
					result, err := service.List(ctx)
					assert.NoError(t, err)
					assert.Len(t, result, 4)
				}
			}()
		}
		wg.Wait()
	})

	t.Run("저장소 오류를 그대로 전달한다", func(t *testing.T) {
		mockRepo := new(MockMemberRepository)
		service := NewMemberService(mockRepo)

		mockRepo.On("GetAll", mock.Anything).Return(nil, errors.New("disk gone")).Once()

		result, err := service.List(context.Background())

		require.Error(t, err)
		assert.Nil(t, result)
		mockRepo.AssertExpectations(t)
	})
}

func TestMemberService_Add(t *testing.T) {
	t.Run("성공: id 접두사와 활성 상태가 채워진다", func(t *testing.T) {
		mockRepo := new(MockMemberRepository)
		service := NewMemberService(mockRepo)

		mockRepo.On("Insert", mock.Anything, mock.MatchedBy(func(m domain.Member) bool {
			return strings.HasPrefix(m.ID, "mem-") && m.IsActive && m.Name == "김철수"
		})).Return(nil).Once()

		result, err := service.Add(context.Background(), domain.NewMemberPayload{
			Name:     "  김철수  ",
			Team:     "찬양팀",
			JoinedAt: "2025-03-01",
		})

		require.NoError(t, err)
		assert.Equal(t, "김철수", result.Name)
		assert.Equal(t, "찬양팀", result.Team)
		assert.Equal(t, "2025-03-01", result.JoinedAt)
		assert.True(t, result.IsActive)
		mockRepo.AssertExpectations(t)
	})

	t.Run("성공: 등록일이 비면 오늘 날짜가 들어간다", func(t *testing.T) {
		mockRepo := new(MockMemberRepository)
		service := NewMemberService(mockRepo)

		mockRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

		result, err := service.Add(context.Background(), domain.NewMemberPayload{Name: "김철수"})

		require.NoError(t, err)
		assert.NotEmpty(t, result.JoinedAt)
		mockRepo.AssertExpectations(t)
	})

	t.Run("오류: 이름이 비어 있다", func(t *testing.T) {
		mockRepo := new(MockMemberRepository)
		service := NewMemberService(mockRepo)

		result, err := service.Add(context.Background(), domain.NewMemberPayload{Name: "   "})

		require.Error(t, err)
		assert.Nil(t, result)

		var domainErr *domain.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "VALIDATION", domainErr.Code)
		mockRepo.AssertNotCalled(t, "Insert")
	})
}
