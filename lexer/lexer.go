// Package lexer implements the core's token recognizers. Each recognizer
// is a pure function of the remaining input and the cursor: it never
// allocates state across calls and never itself decides which recognizer
// to try — that choice belongs to the state's token table (see the parser
// package).
package lexer

import (
	"strconv"

	"github.com/tilewm/wmconfig/grammar"
)

// Match is the result of a successful recognizer call.
type Match struct {
	// Text is the matched value; the driver captures it only when the
	// descriptor has an Identifier. For Number descriptors Text is the
	// decimal spelling and Long holds the parsed value.
	Text string
	Long int64
	// Consumed is the number of input bytes the match advanced the cursor
	// by (for Line and End, this already accounts for the consumed line
	// terminator).
	Consumed int
}

// SkipHSpace advances pos past any run of spaces and tabs. It never skips
// CR or LF: those are meaningful end-of-line tokens.
func SkipHSpace(input []byte, pos int) int {
	for pos < len(input) && (input[pos] == ' ' || input[pos] == '\t') {
		pos++
	}
	return pos
}

// MatchLiteral performs a case-insensitive prefix comparison of literal
// against input at pos.
func MatchLiteral(input []byte, pos int, literal string) (Match, bool) {
	if pos+len(literal) > len(input) {
		return Match{}, false
	}
	for i := 0; i < len(literal); i++ {
		if toLower(input[pos+i]) != toLower(literal[i]) {
			return Match{}, false
		}
	}
	return Match{Text: literal, Consumed: len(literal)}, true
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// MatchNumber accepts an optionally signed decimal integer. It requires at
// least one digit and rejects overflow of int64.
func MatchNumber(input []byte, pos int) (Match, bool) {
	start := pos
	p := pos
	if p < len(input) && (input[p] == '+' || input[p] == '-') {
		p++
	}
	digitsStart := p
	for p < len(input) && input[p] >= '0' && input[p] <= '9' {
		p++
	}
	if p == digitsStart {
		return Match{}, false
	}

	text := string(input[start:p])
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Match{}, false
	}
	return Match{Text: text, Long: n, Consumed: p - start}, true
}

// MatchString implements the 'string' token: if the next byte is '"', it
// consumes a quoted run; otherwise it consumes the rest of the line. It
// requires at least one byte of content.
//
// The quote-scanning deliberately reproduces the original parser's
// ambiguity around a literal backslash immediately preceding a closing
// quote (see doc.go): it looks one byte back for an escaping backslash,
// so a value ending in "\\\"" (backslash, backslash, quote) is read as
// the quote still being escaped and the string remains open.
func MatchString(input []byte, pos int) (Match, bool) {
	return matchStringOrWord(input, pos, false)
}

// MatchWord implements the 'word' token. Its quoted form is identical to
// MatchString's; its unquoted form stops at the first space, tab, ']',
// ',', ';', CR, LF, or end of input.
func MatchWord(input []byte, pos int) (Match, bool) {
	return matchStringOrWord(input, pos, true)
}

func matchStringOrWord(input []byte, pos int, isWord bool) (Match, bool) {
	if pos < len(input) && input[pos] == '"' {
		return matchQuoted(input, pos)
	}

	start := pos
	p := pos
	if isWord {
		for p < len(input) && !isWordDelim(input[p]) {
			p++
		}
	} else {
		for p < len(input) && input[p] != '\r' && input[p] != '\n' {
			p++
		}
	}
	if p == start {
		return Match{}, false
	}
	return Match{Text: string(input[start:p]), Consumed: p - start}, true
}

func isWordDelim(b byte) bool {
	switch b {
	case ' ', '\t', ']', ',', ';', '\r', '\n':
		return true
	default:
		return false
	}
}

func matchQuoted(input []byte, pos int) (Match, bool) {
	beginning := pos + 1
	p := beginning
	for p < len(input) && (input[p] != '"' || input[p-1] == '\\') {
		p++
	}
	if p == beginning {
		// An empty quoted string ("") has no content, so it is not a
		// match at all: the original parser only commits the token when
		// it advanced past the opening quote, and falls through to try
		// the next descriptor otherwise.
		return Match{}, false
	}

	raw := input[beginning:p]
	text := unescapeQuotes(raw)
	consumed := p - pos
	if p < len(input) && input[p] == '"' {
		consumed++
	}
	return Match{Text: text, Consumed: consumed}, true
}

// unescapeQuotes rewrites \" to " and leaves every other byte, including
// every other backslash, untouched — regex-bearing values must survive
// byte-for-byte.
func unescapeQuotes(raw []byte) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) && raw[i+1] == '"' {
			out = append(out, '"')
			i++
			continue
		}
		out = append(out, raw[i])
	}
	return string(out)
}

// MatchLine implements the 'line' token: consume the remainder of the
// current line, then the line terminator itself.
func MatchLine(input []byte, pos int) (Match, bool) {
	p := pos
	for p < len(input) && input[p] != '\r' && input[p] != '\n' {
		p++
	}
	consumed := p - pos
	if p < len(input) {
		consumed++
	}
	return Match{Text: string(input[pos:p]), Consumed: consumed}, true
}

// MatchEnd implements the 'end' token: it matches at end of input, CR, or
// LF, consuming one byte except at end of input.
func MatchEnd(input []byte, pos int) (Match, bool) {
	if pos >= len(input) {
		return Match{Consumed: 0}, true
	}
	if input[pos] == '\r' || input[pos] == '\n' {
		return Match{Consumed: 1}, true
	}
	return Match{}, false
}

// Try dispatches to the recognizer named by kind with literal, the
// descriptor's static spelling (ignored for every kind but Literal).
func Try(kind grammar.Kind, literal string, input []byte, pos int) (Match, bool) {
	switch kind {
	case grammar.Literal:
		return MatchLiteral(input, pos, literal)
	case grammar.Word:
		return MatchWord(input, pos)
	case grammar.String:
		return MatchString(input, pos)
	case grammar.Number:
		return MatchNumber(input, pos)
	case grammar.Line:
		return MatchLine(input, pos)
	case grammar.End:
		return MatchEnd(input, pos)
	default:
		return Match{}, false
	}
}
