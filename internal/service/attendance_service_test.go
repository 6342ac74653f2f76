package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chosundeveloper/rollbook/internal/domain"
)

func TestAttendanceService_CreateSession(t *testing.T) {
	t.Run("성공: 날짜가 정규화되어 저장된다", func(t *testing.T) {
		mockSessionRepo := new(MockSessionRepository)
		service := NewAttendanceService(mockSessionRepo, new(MockAttendanceRepository), new(MockMemberRepository))

		mockSessionRepo.On("ExistsForDate", mock.Anything, "2025-03-09").Return(false, nil).Once()
		mockSessionRepo.On("Insert", mock.Anything, mock.MatchedBy(func(s domain.AttendanceSession) bool {
			return strings.HasPrefix(s.ID, "session-") && s.Date == "2025-03-09"
		})).Return(nil).Once()

		result, err := service.CreateSession(context.Background(), "2025-03-09", "주일예배")

		require.NoError(t, err)
		assert.Equal(t, "2025-03-09", result.Date)
		assert.Equal(t, "주일예배", result.Title)
		mockSessionRepo.AssertExpectations(t)
	})

	t.Run("오류: 이미 존재하는 날짜", func(t *testing.T) {
		mockSessionRepo := new(MockSessionRepository)
		service := NewAttendanceService(mockSessionRepo, new(MockAttendanceRepository), new(MockMemberRepository))

		mockSessionRepo.On("ExistsForDate", mock.Anything, "2025-03-09").Return(true, nil).Once()

		result, err := service.CreateSession(context.Background(), "2025-03-09", "")

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrSessionExists))
		mockSessionRepo.AssertNotCalled(t, "Insert")
	})

	t.Run("오류: 날짜가 비어 있다", func(t *testing.T) {
		service := NewAttendanceService(new(MockSessionRepository), new(MockAttendanceRepository), new(MockMemberRepository))

		result, err := service.CreateSession(context.Background(), "", "")

		require.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("오류: 날짜 형식이 틀렸다", func(t *testing.T) {
		service := NewAttendanceService(new(MockSessionRepository), new(MockAttendanceRepository), new(MockMemberRepository))

		result, err := service.CreateSession(context.Background(), "03/09/2025", "")

		require.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestAttendanceService_ReplaceForDate(t *testing.T) {
	t.Run("성공: 멤버 이름을 조회해 기록에 박는다", func(t *testing.T) {
		mockSessionRepo := new(MockSessionRepository)
		mockAttendanceRepo := new(MockAttendanceRepository)
		mockMemberRepo := new(MockMemberRepository)
		service := NewAttendanceService(mockSessionRepo, mockAttendanceRepo, mockMemberRepo)

		mockSessionRepo.On("ExistsForDate", mock.Anything, "2025-03-09").Return(true, nil).Once()
		mockMemberRepo.On("GetByID", mock.Anything, "mem-1").Return(&domain.Member{ID: "mem-1", Name: "홍길동"}, nil).Once()
		mockAttendanceRepo.On("ReplaceForDate", mock.Anything, "2025-03-09", mock.Anything).Return(nil).Once()

		result, err := service.ReplaceForDate(context.Background(), "2025-03-09", []domain.AttendancePayloadEntry{
			{MemberID: "mem-1", Status: domain.StatusOnline},
		})

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "홍길동", result[0].DisplayName)
		assert.False(t, result[0].IsVisitor)
		assert.True(t, strings.HasPrefix(result[0].ID, "att-"))
		mockSessionRepo.AssertExpectations(t)
		mockAttendanceRepo.AssertExpectations(t)
		mockMemberRepo.AssertExpectations(t)
	})

	t.Run("성공: 멤버 id가 없으면 방문자로 기록된다", func(t *testing.T) {
		mockSessionRepo := new(MockSessionRepository)
		mockAttendanceRepo := new(MockAttendanceRepository)
		service := NewAttendanceService(mockSessionRepo, mockAttendanceRepo, new(MockMemberRepository))

		mockSessionRepo.On("ExistsForDate", mock.Anything, "2025-03-09").Return(true, nil).Once()
		mockAttendanceRepo.On("ReplaceForDate", mock.Anything, "2025-03-09", mock.Anything).Return(nil).Once()

		result, err := service.ReplaceForDate(context.Background(), "2025-03-09", []domain.AttendancePayloadEntry{
			{DisplayName: "", Status: domain.StatusOffline},
		})

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Visitor", result[0].DisplayName)
		assert.True(t, result[0].IsVisitor)
	})

	t.Run("성공: 탈퇴한 멤버 id는 보낸 이름으로 대체된다", func(t *testing.T) {
		mockSessionRepo := new(MockSessionRepository)
		mockAttendanceRepo := new(MockAttendanceRepository)
		mockMemberRepo := new(MockMemberRepository)
		service := NewAttendanceService(mockSessionRepo, mockAttendanceRepo, mockMemberRepo)

		mockSessionRepo.On("ExistsForDate", mock.Anything, "2025-03-09").Return(true, nil).Once()
		mockMemberRepo.On("GetByID", mock.Anything, "mem-gone").Return(nil, nil).Once()
		mockAttendanceRepo.On("ReplaceForDate", mock.Anything, "2025-03-09", mock.Anything).Return(nil).Once()

		result, err := service.ReplaceForDate(context.Background(), "2025-03-09", []domain.AttendancePayloadEntry{
			{MemberID: "mem-gone", DisplayName: "이순신", Status: domain.StatusAbsent},
		})

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "이순신", result[0].DisplayName)
		assert.False(t, result[0].IsVisitor)
	})

	t.Run("오류: 출석부가 없는 날짜에는 기록할 수 없다", func(t *testing.T) {
		mockSessionRepo := new(MockSessionRepository)
		mockAttendanceRepo := new(MockAttendanceRepository)
		service := NewAttendanceService(mockSessionRepo, mockAttendanceRepo, new(MockMemberRepository))

		mockSessionRepo.On("ExistsForDate", mock.Anything, "2099-01-01").Return(false, nil).Once()

		result, err := service.ReplaceForDate(context.Background(), "2099-01-01", []domain.AttendancePayloadEntry{
			{MemberID: "mem-1", Status: domain.StatusOnline},
		})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrNoSession))
		mockAttendanceRepo.AssertNotCalled(t, "ReplaceForDate")
	})

	t.Run("오류: 지원하지 않는 출석 상태", func(t *testing.T) {
		mockSessionRepo := new(MockSessionRepository)
		mockAttendanceRepo := new(MockAttendanceRepository)
		service := NewAttendanceService(mockSessionRepo, mockAttendanceRepo, new(MockMemberRepository))

		mockSessionRepo.On("ExistsForDate", mock.Anything, "2025-03-09").Return(true, nil).Once()

		result, err := service.ReplaceForDate(context.Background(), "2025-03-09", []domain.AttendancePayloadEntry{
			{MemberID: "mem-1", Status: "late"},
		})

		require.Error(t, err)
		assert.Nil(t, result)

		var domainErr *domain.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "VALIDATION", domainErr.Code)
		mockAttendanceRepo.AssertNotCalled(t, "ReplaceForDate")
	})
}

func TestSummarize(t *testing.T) {
	t.Run("상태별 집계와 총합이 맞는다", func(t *testing.T) {
		summary := Summarize([]domain.AttendanceEntry{
			{Status: domain.StatusOnline},
			{Status: domain.StatusOnline},
			{Status: domain.StatusOffline},
			{Status: domain.StatusAbsent},
		})

		assert.Equal(t, 2, summary.Online)
		assert.Equal(t, 1, summary.Offline)
		assert.Equal(t, 1, summary.Absent)
		assert.Equal(t, 4, summary.Total)
	})

	t.Run("빈 목록이면 전부 0이다", func(t *testing.T) {
		summary := Summarize(nil)

		assert.Equal(t, domain.AttendanceSummary{}, summary)
	})
}
