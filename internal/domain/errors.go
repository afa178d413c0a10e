package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches by code so errors.Is works across wrapped instances.
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrNotFound - requested record does not exist
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}

	// ErrNonUniqueResult - a single-result query matched more than one row
	ErrNonUniqueResult = &DomainError{
		Code:    "NON_UNIQUE_RESULT",
		Message: "query expected a single result but matched more than one row",
	}

	// ErrTeamExists - team name already taken
	ErrTeamExists = &DomainError{
		Code:    "TEAM_EXISTS",
		Message: "team name already exists",
	}
)

// NewNotFoundError creates a NOT_FOUND error naming the missing resource.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}
