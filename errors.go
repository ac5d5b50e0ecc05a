package techquiry

import (
	"github.com/goliatone/go-errors"
)

const (
	// TextCodeForbiddenOperation marks actions disallowed by the current
	// session authentication state.
	TextCodeForbiddenOperation = "forbidden_operation"
	// TextCodeInvalidRequest marks caller data that fails validation or a
	// uniqueness check.
	TextCodeInvalidRequest = "invalid_request"
	// TextCodeEntityNotFound marks a record the session expected but the
	// store no longer has.
	TextCodeEntityNotFound = "entity_not_found"
	// TextCodeInternalError marks a failure at the storage boundary.
	TextCodeInternalError = "internal_error"
)

// NewForbiddenOperation builds the error kind for operations that the
// current session state does not allow.
func NewForbiddenOperation(message string) *errors.Error {
	return errors.New(message, errors.CategoryAuthz).
		WithTextCode(TextCodeForbiddenOperation).
		WithCode(errors.CodeForbidden)
}

// NewInvalidRequest builds the error kind for caller-correctable input
// failures.
func NewInvalidRequest(message string) *errors.Error {
	return errors.New(message, errors.CategoryValidation).
		WithTextCode(TextCodeInvalidRequest).
		WithCode(errors.CodeBadRequest)
}

// NewEntityNotFound builds the error kind for records missing from the
// store.
func NewEntityNotFound(message string) *errors.Error {
	return errors.New(message, errors.CategoryNotFound).
		WithTextCode(TextCodeEntityNotFound).
		WithCode(errors.CodeNotFound)
}

// NewInternalError wraps a storage failure. The cause is preserved for
// operational logging and never shown verbatim to the end user.
func NewInternalError(message string, cause error) *errors.Error {
	return errors.Wrap(cause, errors.CategoryInternal, message).
		WithTextCode(TextCodeInternalError)
}

// IsForbiddenOperation reports whether err carries the forbidden operation
// kind.
func IsForbiddenOperation(err error) bool {
	return hasTextCode(err, TextCodeForbiddenOperation)
}

// IsInvalidRequest reports whether err carries the invalid request kind.
func IsInvalidRequest(err error) bool {
	return hasTextCode(err, TextCodeInvalidRequest)
}

// IsEntityNotFound reports whether err carries the entity not found kind.
func IsEntityNotFound(err error) bool {
	return hasTextCode(err, TextCodeEntityNotFound)
}

// IsInternalError reports whether err carries the internal error kind.
func IsInternalError(err error) bool {
	return hasTextCode(err, TextCodeInternalError)
}

func hasTextCode(err error, code string) bool {
	if err == nil {
		return false
	}

	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		return false
	}

	return richErr.TextCode == code
}
