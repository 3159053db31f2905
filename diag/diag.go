// Package diag builds the human-readable "Expected one of these tokens"
// message and caret-underlined source context the original parser printed
// to its log and returned to callers, and emits the same information as
// structured log events.
package diag

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tilewm/wmconfig/grammar"
	"github.com/tilewm/wmconfig/source"
)

// Diagnostic is the machine-readable error object spec.md's external
// interfaces section names: a structured record with exactly these keys.
type Diagnostic struct {
	Success       bool   `json:"success"`
	ParseError    bool   `json:"parse_error"`
	Error         string `json:"error"`
	Input         string `json:"input"`
	ErrorPosition string `json:"errorposition"`

	// Line and Col are not part of the wire record but are convenient for
	// callers that want to jump to the offending position without
	// re-parsing ErrorPosition.
	Line int `json:"-"`
	Col  int `json:"-"`
}

// ExpectedMessage formats "Expected one of these tokens: X, Y, Z" from a
// state's token table, in declared order, eliding ErrorKind descriptors
// (they are internal recovery plumbing and would only confuse a user).
func ExpectedMessage(tokens []grammar.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		switch t.Kind {
		case grammar.ErrorKind:
			continue
		case grammar.Literal:
			parts = append(parts, "'"+t.Literal+"'")
		default:
			parts = append(parts, "<"+t.Kind.String()+">")
		}
	}
	return "Expected one of these tokens: " + strings.Join(parts, ", ")
}

// CaretUnderline renders the caret line spec.md §4.5 describes: it spans
// the whole line containing cursor, from the line's start to its end, with
// tab bytes before the cursor preserved as tabs so columns keep lining up
// in a monospace viewer, every other byte before the cursor replaced with
// a space, and the cursor position through the end of the line replaced
// with '^'.
func CaretUnderline(src *source.Source, lineStart, cursor int) string {
	content := src.Content()
	lineEnd := lineStart
	for lineEnd < len(content) && content[lineEnd] != '\n' && content[lineEnd] != '\r' {
		lineEnd++
	}

	out := make([]byte, lineEnd-lineStart)
	for i := lineStart; i < lineEnd; i++ {
		switch {
		case i >= cursor:
			out[i-lineStart] = '^'
		case content[i] == '\t':
			out[i-lineStart] = '\t'
		default:
			out[i-lineStart] = ' '
		}
	}
	return string(out)
}

// lineText returns the content of the line starting at byte offset start,
// without its terminator.
func lineText(src *source.Source, start int) string {
	content := src.Content()
	end := start
	for end < len(content) && content[end] != '\n' && content[end] != '\r' {
		end++
	}
	return string(content[start:end])
}

// Reporter builds Diagnostics and logs the same information the original
// ELOG calls did, through a structured zerolog.Logger instead of a flat
// text stream.
type Reporter struct {
	Logger   zerolog.Logger
	Filename string
	ParseID  uuid.UUID
}

// Report builds a Diagnostic for a syntax error found at cursor (on the
// line starting at lineStart), where tokens lists what would have been
// accepted, and logs it with up to two lines of context on either side.
func (r *Reporter) Report(src *source.Source, cursor, lineStart int, lineNo int, tokens []grammar.Token) *Diagnostic {
	msg := ExpectedMessage(tokens)
	underline := CaretUnderline(src, lineStart, cursor)

	d := &Diagnostic{
		Success:       false,
		ParseError:    true,
		Error:         msg,
		Input:         string(src.Content()),
		ErrorPosition: underline,
		Line:          lineNo,
		Col:           cursor - lineStart + 1,
	}

	ev := r.Logger.Error().
		Str("parse_id", r.ParseID.String()).
		Str("file", r.Filename).
		Str("message", msg).
		Int("line", lineNo)

	if lineNo > 1 {
		prevStart := previousLineStart(src, lineStart)
		if lineNo > 2 {
			prev2Start := previousLineStart(src, prevStart)
			ev = ev.Str("line-2", lineText(src, prev2Start))
		}
		ev = ev.Str("line-1", lineText(src, prevStart))
	}
	ev = ev.Str("line+0", lineText(src, lineStart)).Str("caret", underline)

	after := nextLineStart(src, lineStart)
	for i := 0; i < 2 && after >= 0; i++ {
		ev = ev.Str("line+"+plusLabel(i+1), lineText(src, after))
		after = nextLineStart(src, after)
	}

	ev.Msg("syntax error")

	return d
}

func plusLabel(n int) string {
	switch n {
	case 1:
		return "1"
	default:
		return "2"
	}
}

// previousLineStart returns the start of the line immediately before the
// one starting at lineStart, or lineStart itself if there is none.
func previousLineStart(src *source.Source, lineStart int) int {
	if lineStart == 0 {
		return 0
	}
	return src.LineStart(lineStart - 1)
}

// nextLineStart returns the start of the line immediately after the one
// starting at lineStart, or -1 if lineStart's line is the last one.
func nextLineStart(src *source.Source, lineStart int) int {
	content := src.Content()
	end := lineStart
	for end < len(content) && content[end] != '\n' && content[end] != '\r' {
		end++
	}
	if end >= len(content) {
		return -1
	}
	next := end + 1
	if content[end] == '\r' && next < len(content) && content[next] == '\n' {
		next++
	}
	if next >= len(content) {
		return -1
	}
	return next
}
