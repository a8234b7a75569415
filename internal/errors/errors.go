// Package errors defines the error kinds raised by the forum core.
// Handlers translate these into HTTP responses; the core itself never
// logs or retries, it only guarantees a distinguishable kind per failure.
package errors

import "fmt"

// ValidationKind tells why a payload failed entity construction.
type ValidationKind int

const (
	// NeededProperty means a required field was absent from the payload.
	NeededProperty ValidationKind = iota
	// DataType means a required field was present with the wrong primitive type.
	DataType
)

func (k ValidationKind) String() string {
	if k == NeededProperty {
		return "NOT_CONTAIN_NEEDED_PROPERTY"
	}
	return "NOT_MEET_DATA_TYPE_SPECIFICATION"
}

// ValidationError is raised by entity constructors when a raw payload is
// malformed. Entity carries the constructing entity's tag (e.g. ADDED_THREAD)
// so transport can map the pair to a user-facing message.
type ValidationError struct {
	Entity string
	Kind   ValidationKind
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s.%s", e.Entity, e.Kind)
}

// NotFoundError is raised when a referenced resource does not exist or is
// soft-deleted. The two conditions are externally indistinguishable.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s tidak ditemukan", e.Resource)
}

// AuthorizationError is raised when the requesting user does not own the
// target resource.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// DomainError covers unexpected invariant violations, e.g. a storage adapter
// returning a malformed row. Fatal to the current operation.
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// ErrorWithStatusCode carries an explicit HTTP status for boundary failures
// that have no domain kind (bad credentials, username taken). The forum core
// never raises it.
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Check if err is instance of T for custom error types
func Is[T error](err error) bool {
	if _, ok := err.(T); ok {
		return true
	}
	return false
}
