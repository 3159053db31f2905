package langdef

import "github.com/tilewm/wmconfig"

const (
	ErrBadDescriptor = wmconfig.GrammarErrors + iota
	ErrBadTarget
	ErrUnknownState
	ErrDuplicateState
	ErrNoInitial
	ErrInitialNoError
)

func lineError(code, line int, msg string, args ...any) *wmconfig.Error {
	return wmconfig.FormatError(code, "line %d: "+msg, prependLine(line, args)...)
}

func prependLine(line int, args []any) []any {
	out := make([]any, 0, len(args)+1)
	out = append(out, line)
	out = append(out, args...)
	return out
}
