/*
Package wmconfig is the core of a configuration-file parser for a tiling
window manager.

Consists of subpackages:
  - grammar: the closed enumeration of states and their ordered token
    descriptors, compiled ahead of time from a grammar description;
  - lexer: pure, stateless recognizers for each token kind;
  - source: the config file's byte buffer and its line/column index;
  - parser: the driver, the captured-value and state-trail stacks, the
    handler interface, and the recovery engine;
  - diag: the error reporter — message formatting, caret rendering, and
    structured logging;
  - langdef: compiles the textual grammar description into grammar tables;
  - preprocess: variable substitution and legacy-version detection, the
    external collaborators the core only ever sees through an interface;
  - cmd/wmcgen, cmd/wmconf, cmd/wmconf-check: the command-line tools built
    on top of the above;
  - examples/wmconf: a worked, testable semantic layer (grammar, handlers,
    duplicate-binding check) exercising the core end to end.

Typical usage is:

1. Describe a grammar in the line-oriented format langdef understands.
Compile it once, either with langdef directly or with the wmcgen tool.

2. Define Handlers for the grammar's call identifiers — these are the
semantic callbacks that actually mutate window-manager state.

3. Build a Parser with parser.New from the compiled grammar and the
handlers, then call its Parse method with a byte buffer and a
parser.Context. Inspect the returned Result for diagnostics.
*/
package wmconfig

import (
	"fmt"

	"github.com/google/uuid"
)

// Error classes used by subpackages, each class reserves 100 codes.
const (
	GrammarErrors    = 1   // used by langdef
	LexicalErrors    = 101 // reserved for lexer; no lexer error uses it
	SyntaxErrors     = 201 // reserved for user-facing parse errors; parser reports those as diag.Diagnostic values instead
	RuntimeErrors    = 301 // used by parser, for grammar-bug invariant violations
	PreprocessErrors = 401 // reserved for preprocess; no preprocess error uses it
)

// Error is the error type used by wmconfig's subpackages.
type Error struct {
	// ID is a fresh random identifier stamped by NewError; unlike
	// parser.Result.ID, it identifies one error value, not a whole parse
	// run. Nothing in this module writes it to a log.
	ID uuid.UUID

	// Code contains a non-zero error code.
	Code int

	// Message contains a non-empty error message, including source name
	// and position information if provided.
	Message string

	// SourceName contains the source file name that caused this error, or "".
	SourceName string

	// Line contains the 1-based line number in the source file, or 0.
	Line int

	// Col contains the 1-based column number in the source file, or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when
// constructing an error; source.Pos implements this interface.
type SourcePos interface {
	SourceName() string
	Line() int
	Col() int
}

// NewError creates a new Error, stamped with a fresh correlation ID. name,
// line, and col are appended to msg if all three are non-zero/non-empty.
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{uuid.New(), code, msg, name, line, col}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates an Error with no source/position information.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates an Error carrying pos's source/position information.
// pos must not be nil.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
