package errors

import (
	"errors"
	"fmt"
)

// ConflictCode is a stable machine-readable identifier for business-rule
// conflicts so handlers above the core can map them to stable responses
type ConflictCode string

const (
	CodeLastAdmin       ConflictCode = "LAST_ADMIN"
	CodeAlreadyMember   ConflictCode = "ALREADY_MEMBER"
	CodeMemberDisabled  ConflictCode = "MEMBER_DISABLED"
	CodeInvalidStatus   ConflictCode = "INVALID_STATUS"
	CodeHasChildren     ConflictCode = "HAS_CHILDREN"
	CodeHasLeases       ConflictCode = "HAS_LEASES"
	CodeUnitOccupied    ConflictCode = "UNIT_OCCUPIED"
	CodeAlreadyArchived ConflictCode = "ALREADY_ARCHIVED"
	CodeNotArchived     ConflictCode = "NOT_ARCHIVED"
	CodeLeaseNotDraft   ConflictCode = "LEASE_NOT_DRAFT"
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

// ConflictError represents a business-rule violation that depends on the
// current state of other records, not on the request payload. Conflicts are
// terminal: the caller must resolve dependent state before retrying.
type ConflictError struct {
	Code    ConflictCode
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ConflictError by code
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Code == t.Code
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

// AuthenticationError represents authentication-related errors. These are a
// hard stop: no actor was resolved for the request.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents a permission-denied decision by the role
// policy evaluator. Terminal and user-visible, never retried.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrMembershipNotFound   = &NotFoundError{Entity: "membership"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrPropertyNotFound     = &NotFoundError{Entity: "property"}
	ErrUnitNotFound         = &NotFoundError{Entity: "unit"}
	ErrTenantNotFound       = &NotFoundError{Entity: "tenant"}
	ErrLeaseNotFound        = &NotFoundError{Entity: "lease"}
	ErrCaseNotFound         = &NotFoundError{Entity: "case"}
	ErrTaskNotFound         = &NotFoundError{Entity: "task"}
	ErrDocumentNotFound     = &NotFoundError{Entity: "document"}
	ErrInvitationNotFound   = &NotFoundError{Entity: "invitation"}
)

// Conflict Errors
var (
	ErrLastAdmin = &ConflictError{
		Code:    CodeLastAdmin,
		Message: "organization must keep at least one active admin",
	}
	ErrAlreadyMember = &ConflictError{
		Code:    CodeAlreadyMember,
		Message: "user is already a member of this organization",
	}
	ErrMemberDisabled = &ConflictError{
		Code:    CodeMemberDisabled,
		Message: "membership is disabled; reactivate it instead of re-inviting",
	}
	ErrInvalidStatus = &ConflictError{
		Code:    CodeInvalidStatus,
		Message: "invitation has already been processed",
	}
	ErrHasChildren = &ConflictError{
		Code:    CodeHasChildren,
		Message: "case still owns tasks or documents",
	}
	ErrHasLeases = &ConflictError{
		Code:    CodeHasLeases,
		Message: "tenant is still referenced by leases",
	}
	ErrUnitOccupied = &ConflictError{
		Code:    CodeUnitOccupied,
		Message: "unit is occupied",
	}
	ErrAlreadyArchived = &ConflictError{
		Code:    CodeAlreadyArchived,
		Message: "organization is already archived",
	}
	ErrNotArchived = &ConflictError{
		Code:    CodeNotArchived,
		Message: "organization is not archived",
	}
	ErrLeaseNotDraft = &ConflictError{
		Code:    CodeLeaseNotDraft,
		Message: "only draft leases can be deleted; end or terminate the lease instead",
	}
)

// Authentication / Authorization Errors
var (
	ErrUnauthenticated     = &AuthenticationError{Message: "no authenticated actor"}
	ErrInvalidRefreshToken = &AuthenticationError{Message: "invalid refresh token"}
	ErrRefreshTokenExpired = &AuthenticationError{Message: "refresh token has expired"}

	ErrNotAMember          = &AuthorizationError{Message: "not a member"}
	ErrMembershipNotActive = &AuthorizationError{Message: "membership not active"}
	ErrRoleNotPermitted    = &AuthorizationError{Message: "role not permitted"}
	ErrOutOfScope          = &AuthorizationError{Message: "out of scope"}
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

// ConflictCodeOf returns the conflict code carried by the error, or ""
func ConflictCodeOf(err error) ConflictCode {
	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr.Code
	}
	return ""
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError with the given code
func NewConflictError(code ConflictCode, message string) error {
	return &ConflictError{Code: code, Message: message}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
