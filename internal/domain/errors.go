package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

// errors.Is()로 코드 비교가 가능하도록 한다
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

var (
	// ErrNoSession - 해당 날짜의 출석부가 아직 생성되지 않음
	ErrNoSession = &DomainError{
		Code:    "PRECONDITION",
		Message: "해당 날짜의 출석부가 존재하지 않습니다. 먼저 생성해 주세요.",
	}

	// ErrSessionExists - 같은 날짜의 출석부가 이미 존재함
	ErrSessionExists = &DomainError{
		Code:    "VALIDATION",
		Message: "이미 존재하는 날짜입니다.",
	}

	// ErrUsernameTaken - 계정 아이디 중복
	ErrUsernameTaken = &DomainError{
		Code:    "CONFLICT",
		Message: "이미 존재하는 아이디입니다.",
	}

	// ErrUnauthorized - 세션 토큰이 없거나 유효하지 않음
	ErrUnauthorized = &DomainError{
		Code:    "UNAUTHORIZED",
		Message: "Unauthorized",
	}

	// ErrForbidden - 관리자 권한 필요
	ErrForbidden = &DomainError{
		Code:    "FORBIDDEN",
		Message: "Forbidden",
	}

	// ErrNotFound - 리소스를 찾을 수 없음
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}
)

func NewValidationError(message string) *DomainError {
	return &DomainError{
		Code:    "VALIDATION",
		Message: message,
	}
}

func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewStorageError는 저장소 I/O 실패를 감싼다. 핸들러에서 500으로 변환된다.
func NewStorageError(op string, err error) *DomainError {
	return &DomainError{
		Code:    "STORAGE",
		Message: fmt.Sprintf("storage failure: %s", op),
		Err:     err,
	}
}
