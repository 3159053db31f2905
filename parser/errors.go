package parser

import "github.com/tilewm/wmconfig"

// Error codes used by parser, offset from wmconfig.RuntimeErrors: these
// all indicate a grammar bug, never a malformed configuration file.
const (
	ErrMissingHandler = wmconfig.RuntimeErrors + iota
	ErrNoInitialError
	ErrStackOverflow
	ErrTrailOverflow
	ErrNoRecoveryState
)

func missingHandlerError(name string, index int) *wmconfig.Error {
	return wmconfig.FormatError(ErrMissingHandler, "no handler registered for call identifier %q (index %d)", name, index)
}

func noInitialErrorTokenError() *wmconfig.Error {
	return wmconfig.FormatError(ErrNoInitialError, "INITIAL state must carry an <error> descriptor")
}

func noRecoveryStateError() *wmconfig.Error {
	return wmconfig.FormatError(ErrNoRecoveryState, "no <error> descriptor reachable from the state trail: invariant violation")
}
