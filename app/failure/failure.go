package failure

import (
	"errors"
	"fmt"
	"strings"
)

type Kind int

const (
	KindInvalidArgument Kind = iota + 1
	KindIO
	KindMalformedDocument
	KindMissingRequiredField
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindIO:
		return "IOFailure"
	case KindMalformedDocument:
		return "MalformedDocumentFailure"
	case KindMissingRequiredField:
		return "MissingRequiredFieldFailure"
	default:
		return "UnknownFailure"
	}
}

// Sentinels for errors.Is; they match any *Error of the same kind.
var (
	ErrInvalidArgument      = &Error{Kind: KindInvalidArgument}
	ErrIO                   = &Error{Kind: KindIO}
	ErrMalformedDocument    = &Error{Kind: KindMalformedDocument}
	ErrMissingRequiredField = &Error{Kind: KindMissingRequiredField}
)

// Error is the single error type surfaced by the parsing pipeline.
type Error struct {
	Kind   Kind
	Op     string // entry point or loader step
	Source string // location, file name or system id, when known
	Entity string // podcast, episode, enclosure, ...
	Field  string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Op != "" {
		b.WriteString(" in ")
		b.WriteString(e.Op)
	}
	if e.Source != "" {
		fmt.Fprintf(&b, " (%s)", e.Source)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": %s requires field '%s'", e.Entity, e.Field)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Field == "" && t.Err == nil
}

func InvalidArgument(op, message string) *Error {
	return &Error{Kind: KindInvalidArgument, Op: op, Err: errors.New(message)}
}

func IO(op, source string, err error) *Error {
	return &Error{Kind: KindIO, Op: op, Source: source, Err: err}
}

func Malformed(op, source string, err error) *Error {
	return &Error{Kind: KindMalformedDocument, Op: op, Source: source, Err: err}
}

func MissingField(entity, field string) *Error {
	return &Error{Kind: KindMissingRequiredField, Entity: entity, Field: field}
}

// KindOf reports the failure kind carried by err, or 0 when err is not a pipeline failure.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedDocument)
}

func IsMissingField(err error) bool {
	return errors.Is(err, ErrMissingRequiredField)
}

// WithOp returns a copy of err tagged with op when err is a pipeline failure
// that does not name its operation yet.
func WithOp(err error, op string) error {
	var fe *Error
	if !errors.As(err, &fe) || fe.Op != "" {
		return err
	}
	tagged := *fe
	tagged.Op = op
	return &tagged
}
