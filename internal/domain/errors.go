package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

const (
	CodeGroupExists      = "GROUP_EXISTS"
	CodeGroupFull        = "GROUP_FULL"
	CodeNotMember        = "NOT_MEMBER"
	CodeNotFound         = "NOT_FOUND"
	CodePlanRestricted   = "PLAN_RESTRICTED"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeBadRequest       = "BAD_REQUEST"
	CodeRateLimited      = "RATE_LIMITED"
)

var (
	// ErrGroupExists - группа с таким id уже существует
	ErrGroupExists = &DomainError{
		Code:    CodeGroupExists,
		Message: "group already exists",
	}

	// ErrGroupFull - достигнут лимит участников тарифа
	ErrGroupFull = &DomainError{
		Code:    CodeGroupFull,
		Message: "group has reached the member limit of its plan",
	}

	// ErrNotMember - пользователь не состоит в группе
	ErrNotMember = &DomainError{
		Code:    CodeNotMember,
		Message: "user is not a member of this group",
	}

	// ErrPlanRestricted - функция недоступна на текущем тарифе
	ErrPlanRestricted = &DomainError{
		Code:    CodePlanRestricted,
		Message: "auto search is not available on this plan",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrValidation - общий код для ошибок валидации, удобен для errors.Is
	ErrValidation = &DomainError{
		Code:    CodeValidationFailed,
		Message: "validation failed",
	}

	// ErrRateLimited - слишком много запросов
	ErrRateLimited = &DomainError{
		Code:    CodeRateLimited,
		Message: "rate limit exceeded, try again later",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError создает ошибку VALIDATION_FAILED
func NewValidationError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    CodeValidationFailed,
		Message: fmt.Sprintf(format, args...),
	}
}

func NewBadRequestError(message string) *DomainError {
	return &DomainError{
		Code:    CodeBadRequest,
		Message: message,
	}
}
