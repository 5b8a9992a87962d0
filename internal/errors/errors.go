package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a duplicate registration or an exhausted uniqueness search
type ConflictError struct {
	Entity  string
	Context string // Additional context like "for this discipline"
}

func (e *ConflictError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s conflict %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s conflict", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && e.Context == t.Context
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// CapacityError is returned when a team roster is already at its configured maximum
type CapacityError struct {
	Entity string
	Limit  int
}

func (e *CapacityError) Error() string {
	if e.Limit > 0 {
		return fmt.Sprintf("%s is full (maximum %d)", e.Entity, e.Limit)
	}
	return fmt.Sprintf("%s is full", e.Entity)
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// PersistenceError wraps a failure of the underlying store on a single record
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrEventNotFound        = &NotFoundError{Entity: "event"}
	ErrDisciplineNotFound   = &NotFoundError{Entity: "discipline"}
	ErrStudentNotFound      = &NotFoundError{Entity: "student"}
	ErrRegistrationNotFound = &NotFoundError{Entity: "registration"}
	ErrInviteCodeNotFound   = &NotFoundError{Entity: "invite code"}
	ErrMemberNotFound       = &NotFoundError{Entity: "team member"}
)

// Conflict Errors
var (
	ErrAlreadyRegistered   = &ConflictError{Entity: "registration", Context: "for this discipline"}
	ErrDuplicateKey        = &ConflictError{Entity: "registration", Context: "for this event and student"}
	ErrInviteCodeExhausted = &ConflictError{Entity: "invite code", Context: "after exhausting retries"}
	ErrDuplicateTeamMember = &ConflictError{Entity: "team member", Context: "listed more than once"}
	ErrAlreadyOnTeam       = &ConflictError{Entity: "team member", Context: "already on this team"}
)

// Concurrency Errors
var (
	ErrStaleRoster          = &ConflictError{Entity: "registration", Context: "changed since it was read"}
	ErrTeamCapacityExceeded = &CapacityError{Entity: "team"}
)

// Authorization Errors
var (
	ErrNotRegistrationOwner = &AuthorizationError{Message: "only the owner can modify this registration"}
	ErrCaptainOnly          = &AuthorizationError{Message: "only the team captain can perform this action"}
	ErrNotTeamMember        = &AuthorizationError{Message: "student is not a member of this team"}
)

// Business Logic Errors
var (
	ErrRegistrationClosed   = &ValidationError{Field: "event", Message: "registration is not open"}
	ErrCannotRemoveCaptain  = &ValidationError{Field: "member_id", Message: "cannot remove captain directly"}
	ErrNotTeamDiscipline    = &ValidationError{Field: "discipline", Message: "discipline is not a team discipline"}
	ErrInitiatorNotOnRoster = &ValidationError{Field: "team", Message: "initiating student must be on the roster"}
	ErrTeamKindMismatch     = &ValidationError{Field: "team", Message: "team kind does not match the discipline"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsCapacity checks if an error is a CapacityError
func IsCapacity(err error) bool {
	var capacityErr *CapacityError
	return errors.As(err, &capacityErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var persistenceErr *PersistenceError
	return errors.As(err, &persistenceErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError for a custom entity
func NewConflictError(entity, context string) error {
	return &ConflictError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewCapacityError creates a new CapacityError with the configured limit
func NewCapacityError(entity string, limit int) error {
	return &CapacityError{Entity: entity, Limit: limit}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewPersistenceError wraps a store failure; nil stays nil
func NewPersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsPersistence(err) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}
