// Package shaderr defines the typed error values surfaced across the
// module, so callers can distinguish failure kinds with errors.Is/As
// instead of matching on message text.
package shaderr

import (
	"fmt"

	"github.com/boralg/shadersense/shading"
)

// ParseError means the grammar could not produce a syntax tree for the
// given content. Recovering means discarding the prior tree and retrying
// from scratch on the next edit.
type ParseError struct {
	FilePath string
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.FilePath, e.Reason)
}

// SymbolQueryError means a query produced an unexpected match shape (a
// missing capture, an unresolvable scope). It is surfaced but does not
// stop extraction: the offending rule simply contributes no symbols for
// that match.
type SymbolQueryError struct {
	Range  shading.Range
	Reason string
}

func (e *SymbolQueryError) Error() string {
	return fmt.Sprintf("symbol query error at %s: %s", e.Range.Start, e.Reason)
}

// NoSymbol is the sentinel for "no matching symbol at this position". It
// is never meant to reach a user; callers use it to drive search
// fall-through between resolution strategies.
var NoSymbol = fmt.Errorf("no symbol at position")

// IoError wraps a failed include resolution or file read. The consumer
// decides whether to ignore it (an unresolved include becomes a
// diagnostic, not a fatal failure).
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("io error for %s: %v", e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// ValidationError means the external compiler failed structurally: it
// could not be invoked, or it produced output the validator could not
// parse. Fatal for that validation call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// InternalError means an invariant was violated (an unexpected node kind,
// a compiler error with no spans to map). Should be rare; always logged.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Message)
}
