package parser

import "github.com/tilewm/wmconfig/source"

// HandlerContext is the boundary exposed to semantic callbacks. Handlers
// may read captured values freely but must not retain a HandlerContext,
// or anything obtained from it, past their own invocation: the captured
// value stack it reads from is cleared the moment the handler returns.
type HandlerContext struct {
	values *capturedStack
	pos    source.Pos
	result *Result
}

// GetString returns the value captured under identifier, if any. Absent
// returns ("", false).
func (hc *HandlerContext) GetString(identifier string) (string, bool) {
	return hc.values.getString(identifier)
}

// GetLong returns the value captured under identifier, or 0 if absent —
// callers that need to distinguish "absent" from "explicitly zero" should
// use GetLongOk.
func (hc *HandlerContext) GetLong(identifier string) int64 {
	n, _ := hc.values.getLong(identifier)
	return n
}

// GetLongOk is GetLong with an explicit presence flag.
func (hc *HandlerContext) GetLongOk(identifier string) (int64, bool) {
	return hc.values.getLong(identifier)
}

// Pos returns the source position of the token that triggered this call.
func (hc *HandlerContext) Pos() source.Pos {
	return hc.pos
}

// Diagnosef appends a handler-authored diagnostic to the parse result —
// for semantic complaints a handler wants surfaced the same way a syntax
// error is (e.g. "workspace number out of range"), without aborting the
// parse. It does not set the caller's error flag; handlers that consider
// their complaint an error, not a warning, should do so themselves via
// the Context passed to Parse.
func (hc *HandlerContext) Diagnosef(format string, args ...any) {
	hc.result.appendHandlerDiagnostic(format, args...)
}

// Handler is a semantic callback invoked on a __CALL transition. It
// returns the next state the driver should adopt; grammars almost always
// return grammar.InitialState or the enclosing block's idle state.
type Handler func(hc *HandlerContext) int

// Handlers maps a grammar's call-identifier names (Grammar.Calls) to the
// callback that implements them.
type Handlers map[string]Handler
