// error kinds shared by the conversion packages
package werr

import (
	"fmt"

	"golang.org/x/xerrors"
)

type Kind uint8

const (
	InvalidLength Kind = iota + 1
	IndexOutOfRange
	RangeError
	UnsupportedWidth
	UnsupportedLength
	OutOfRange
	EncodingError
)

var kindNames = [...]string{
	InvalidLength:     "invalid length",
	IndexOutOfRange:   "index out of range",
	RangeError:        "range error",
	UnsupportedWidth:  "unsupported width",
	UnsupportedLength: "unsupported length",
	OutOfRange:        "out of range",
	EncodingError:     "encoding error",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Kind is itself an error so that callers
// can match with errors.Is(err, werr.RangeError)
func (k Kind) Error() string { return k.String() }

// Op names the failing function (eg bint.Uint32LE).
// Value holds the offending input: a length, offset,
// width, or the rejected number.
type Error struct {
	Op    string
	Kind  Kind
	Value any
}

func New(op string, k Kind, v any) *Error {
	return &Error{Op: op, Kind: k, Value: v}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (%v)", e.Op, e.Kind, e.Value)
}

func (e *Error) Unwrap() error { return e.Kind }

// Returns the Kind of err or 0 if err
// does not wrap an *Error.
func KindOf(err error) Kind {
	var e *Error
	if xerrors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Wraps xerrors.Errorf but returns nil if no
// error is present in args
func Errorf(format string, args ...interface{}) error {
	for i := range args {
		if _, ok := args[i].(error); ok {
			return xerrors.Errorf(format, args...)
		}
	}
	return nil
}
