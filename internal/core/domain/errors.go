package domain

import "errors"

// Error kinds. Every failure surfaced to a client unwraps to one of these.
var (
	ErrAuthenticationMissing = errors.New("authentication missing")
	ErrAuthenticationInvalid = errors.New("authentication invalid")
	ErrAuthorizationDenied   = errors.New("authorization denied")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	ErrNotFound           = errors.New("not found")
	ErrConflictDuplicate  = errors.New("duplicate record")
	ErrDependencyConflict = errors.New("record has dependents")
	ErrMissingReference   = errors.New("referenced record does not exist")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
)

// Error attaches a client-facing message to one of the error kinds above.
type Error struct {
	Kind    error
	Message string
}

func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Describe wraps err with message when err is of the given kind, and returns
// err untouched otherwise.
func Describe(err, kind error, message string) error {
	if err == nil || !errors.Is(err, kind) {
		return err
	}
	return &Error{Kind: kind, Message: message}
}

// MessageOf returns the client-facing message carried by err, if any.
func MessageOf(err error) (string, bool) {
	var de *Error
	if errors.As(err, &de) && de.Message != "" {
		return de.Message, true
	}
	return "", false
}
