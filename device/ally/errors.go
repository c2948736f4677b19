package ally

import (
	"errors"
	"fmt"
)

// Kind classifies errors surfaced by this package.
type Kind string

const (
	// KindValidation covers out-of-range or malformed setting values.
	KindValidation Kind = "validation"
	// KindUnknownSymbol covers button names the symbol table cannot resolve.
	KindUnknownSymbol Kind = "unknown symbol"
	// KindTransport covers feature report I/O failures.
	KindTransport Kind = "transport"
	// KindNotReady covers an exhausted readiness handshake.
	KindNotReady Kind = "not ready"
	// KindOutOfResources covers enumeration and handle acquisition failures.
	KindOutOfResources Kind = "out of resources"
)

// Error is the typed error for controller operations. Op names the
// operation or push category that failed.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err as an *Error of the given kind.
func NewError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Validationf builds a KindValidation error from a format string.
func Validationf(op, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Op: op, Err: fmt.Errorf(format, args...)}
}

// IsKind reports whether any error in err's chain is an *Error of the
// given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}
