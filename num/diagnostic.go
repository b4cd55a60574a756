package num

import (
	"errors"
	"fmt"

	"numkit/shared"
)

type DiagnosticCode int

const (
	// UnknownError is a fallback code for errors without a more specific code.
	UnknownError DiagnosticCode = iota

	// InvalidArgument marks an input outside the domain of the operation.
	InvalidArgument
)

// ErrInvalidArgument is matched by errors.Is for every InvalidArgument diagnostic.
var ErrInvalidArgument = errors.New("invalid argument")

// Diagnostic describes why an operation rejected its input.
type Diagnostic struct {
	Code DiagnosticCode
	Arg  string // name of the offending parameter
	Msg  string
}

func (d *Diagnostic) String() string {
	return fmt.Sprintf("%s %s: %s",
		shared.ColorString(" Error ", shared.ErrorBadge),
		shared.ColorString(d.Arg, shared.ArgumentText),
		d.Msg,
	)
}

func (d *Diagnostic) Error() string {
	return d.String()
}

func (d *Diagnostic) Unwrap() error {
	if d.Code == InvalidArgument {
		return ErrInvalidArgument
	}
	return nil
}

func CreateErrorDiagnostic(code DiagnosticCode, arg, msg string) *Diagnostic {
	return &Diagnostic{code, arg, msg}
}

func invalidArgument(arg, format string, a ...any) *Diagnostic {
	return CreateErrorDiagnostic(InvalidArgument, arg, fmt.Sprintf(format, a...))
}
