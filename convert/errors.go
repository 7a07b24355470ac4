package convert

import (
	"fmt"

	"golang.org/x/xerrors"
)

// convertError is a conversion-fatal failure: a malformed token stream the
// per-opcode skip table cannot recover from. Grounded on the gate-computer
// corpus's own string-based module error, generalized with Unwrap so it
// composes with xerrors.Is/As.
type convertError struct {
	text  string
	cause error
}

func (e *convertError) Error() string { return e.text }
func (e *convertError) Unwrap() error { return e.cause }

// newConvertError reports a conversion failure with no underlying cause.
func newConvertError(format string, args ...interface{}) error {
	return &convertError{text: fmt.Sprintf(format, args...)}
}

// wrapConvertError reports a conversion failure wrapping cause, following
// xerrors.Errorf's %w convention so the cause survives xerrors.Is/As.
func wrapConvertError(cause error, format string, args ...interface{}) error {
	return &convertError{text: xerrors.Errorf(format+": %w", append(args, cause)...).Error(), cause: cause}
}
