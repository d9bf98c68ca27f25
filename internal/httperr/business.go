package httperr

import "errors"

// Kind classifies a business failure. It decides the HTTP status.
type Kind int

const (
	KindValidation Kind = iota
	KindUnauthenticated
	KindUnauthorized
	KindNotFound
	KindConflict
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

// ErrBusiness is a validation failure identified by code.
func ErrBusiness(code string) error {
	return BusinessError{Kind: KindValidation, Code: code}
}

func ErrUnauthenticated(code string) error {
	return BusinessError{Kind: KindUnauthenticated, Code: code}
}

func ErrForbidden(code string) error {
	return BusinessError{Kind: KindUnauthorized, Code: code}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func ErrConflict(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// KindOf returns the kind of a business error. ok is false for anything
// else, which callers treat as internal.
func KindOf(err error) (kind Kind, ok bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return 0, false
}
