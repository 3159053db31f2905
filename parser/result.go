package parser

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tilewm/wmconfig/diag"
)

// Context is the mutable record the caller supplies and that the core
// never owns: a place to report the source name, accumulate the
// "something went wrong" flag, and, optionally, remember the last line
// seen (some callers log it for context outside of a Diagnostic).
type Context struct {
	Filename  string
	HasErrors bool
	LastLine  string
}

// Result is the per-parse aggregate: the diagnostic stream plus the
// correlation ID every log line for this parse was tagged with.
type Result struct {
	Diagnostics []diag.Diagnostic
	ID          uuid.UUID
}

func (r *Result) appendHandlerDiagnostic(format string, args ...any) {
	r.Diagnostics = append(r.Diagnostics, diag.Diagnostic{
		Success:    false,
		ParseError: false,
		Error:      fmt.Sprintf(format, args...),
	})
}
