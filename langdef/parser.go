package langdef

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/tilewm/wmconfig/grammar"
)

// ParseBytes compiles a grammar description held in src.
func ParseBytes(src []byte) (*grammar.Grammar, error) {
	return Parse(bufio.NewScanner(bytes.NewReader(src)))
}

// ParseString compiles a grammar description held in src.
func ParseString(src string) (*grammar.Grammar, error) {
	return Parse(bufio.NewScanner(strings.NewReader(src)))
}

// rawDescriptor is one descriptor line, not yet resolved against the
// state-name table (a forward reference to a state declared later is
// legal, so resolution happens in a second pass).
type rawDescriptor struct {
	kind       grammar.Kind
	literal    string
	identifier string
	targetCall string // non-empty means "-> call(targetCall)"
	targetName string // state name, valid when targetCall == ""
	line       int
}

type rawState struct {
	name        string
	line        int
	descriptors []rawDescriptor
}

// Parse compiles a grammar description read from sc, line by line.
func Parse(sc *bufio.Scanner) (*grammar.Grammar, error) {
	var states []rawState
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if rest, ok := cutPrefix(line, "state"); ok {
			name := strings.TrimSpace(rest)
			if name == "" {
				return nil, lineError(ErrBadDescriptor, lineNo, "state declaration with no name")
			}
			states = append(states, rawState{name: name, line: lineNo})
			continue
		}

		if len(states) == 0 {
			return nil, lineError(ErrBadDescriptor, lineNo, "descriptor before any state declaration")
		}

		d, err := parseDescriptorLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		cur := &states[len(states)-1]
		cur.descriptors = append(cur.descriptors, d)
	}

	return build(states)
}

// cutPrefix reports whether line starts with the keyword kw followed by
// whitespace (or end of line), returning the remainder.
func cutPrefix(line, kw string) (string, bool) {
	if !strings.HasPrefix(line, kw) {
		return "", false
	}
	rest := line[len(kw):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return rest, true
}

// parseDescriptorLine parses "DESCRIPTOR -> TARGET".
func parseDescriptorLine(line string, lineNo int) (rawDescriptor, error) {
	left, right, ok := strings.Cut(line, "->")
	if !ok {
		return rawDescriptor{}, lineError(ErrBadDescriptor, lineNo, "missing '->' in descriptor")
	}
	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)
	if left == "" || right == "" {
		return rawDescriptor{}, lineError(ErrBadDescriptor, lineNo, "empty descriptor or target")
	}

	d := rawDescriptor{line: lineNo}
	if err := parseDescriptorSpec(left, lineNo, &d); err != nil {
		return rawDescriptor{}, err
	}
	if err := parseTarget(right, lineNo, &d); err != nil {
		return rawDescriptor{}, err
	}
	return d, nil
}

func parseDescriptorSpec(spec string, lineNo int, d *rawDescriptor) error {
	if strings.HasPrefix(spec, "'") {
		end := strings.IndexByte(spec[1:], '\'')
		if end < 0 {
			return lineError(ErrBadDescriptor, lineNo, "unterminated literal %q", spec)
		}
		d.kind = grammar.Literal
		d.literal = spec[1 : end+1]
		return parseIdentifierSuffix(strings.TrimSpace(spec[end+2:]), lineNo, d)
	}

	name := spec
	if i := strings.IndexByte(spec, '{'); i >= 0 {
		name = spec[:i]
	}
	kind, ok := kindByName(strings.TrimSpace(name))
	if !ok {
		return lineError(ErrBadDescriptor, lineNo, "unknown token kind %q", name)
	}
	d.kind = kind
	return parseIdentifierSuffix(spec[len(name):], lineNo, d)
}

// parseIdentifierSuffix parses an optional trailing "{identifier}".
func parseIdentifierSuffix(suffix string, lineNo int, d *rawDescriptor) error {
	suffix = strings.TrimSpace(suffix)
	if suffix == "" {
		return nil
	}
	if !strings.HasPrefix(suffix, "{") || !strings.HasSuffix(suffix, "}") {
		return lineError(ErrBadDescriptor, lineNo, "malformed identifier suffix %q", suffix)
	}
	id := suffix[1 : len(suffix)-1]
	if id == "" {
		return lineError(ErrBadDescriptor, lineNo, "empty identifier in %q", suffix)
	}
	if d.kind == grammar.ErrorKind {
		return lineError(ErrBadDescriptor, lineNo, "error descriptor cannot capture a value")
	}
	d.identifier = id
	return nil
}

func parseTarget(target string, lineNo int, d *rawDescriptor) error {
	if strings.HasPrefix(target, "call(") && strings.HasSuffix(target, ")") {
		name := strings.TrimSpace(target[len("call(") : len(target)-1])
		if name == "" {
			return lineError(ErrBadTarget, lineNo, "empty handler name in call()")
		}
		d.targetCall = name
		return nil
	}
	d.targetName = target
	return nil
}

func kindByName(name string) (grammar.Kind, bool) {
	switch name {
	case "word":
		return grammar.Word, true
	case "string":
		return grammar.String, true
	case "number":
		return grammar.Number, true
	case "line":
		return grammar.Line, true
	case "end":
		return grammar.End, true
	case "error":
		return grammar.ErrorKind, true
	default:
		return 0, false
	}
}

// build resolves raw states and descriptors into a *grammar.Grammar: it
// assigns state indices (INITIAL forced to 0), resolves every target
// state name, and assigns call indices in first-reference order.
func build(raw []rawState) (*grammar.Grammar, error) {
	index := make(map[string]int)
	initialLine := make(map[string]int)
	order := make([]string, 0, len(raw))

	hasInitial := false
	for _, s := range raw {
		if _, dup := index[s.name]; dup {
			return nil, lineError(ErrDuplicateState, s.line, "state %q declared more than once", s.name)
		}
		if s.name == "INITIAL" {
			hasInitial = true
		}
		index[s.name] = -1 // placeholder, reassigned below; marks the name seen
		initialLine[s.name] = s.line
		order = append(order, s.name)
	}
	if !hasInitial {
		return nil, lineError(ErrNoInitial, 1, "grammar declares no INITIAL state")
	}

	// INITIAL gets index 0; everything else keeps declaration order,
	// shifted past it.
	idx := 1
	index["INITIAL"] = 0
	for _, name := range order {
		if name == "INITIAL" {
			continue
		}
		index[name] = idx
		idx++
	}

	states := make([]grammar.State, len(raw))
	var calls []string
	callIndex := make(map[string]int)

	for _, s := range raw {
		si := index[s.name]
		tokens := make([]grammar.Token, len(s.descriptors))
		for i, d := range s.descriptors {
			t := grammar.Token{Kind: d.kind, Literal: d.literal, Identifier: d.identifier}
			if d.targetCall != "" {
				ci, ok := callIndex[d.targetCall]
				if !ok {
					ci = len(calls)
					calls = append(calls, d.targetCall)
					callIndex[d.targetCall] = ci
				}
				t.Next = grammar.CallState
				t.Call = ci
			} else {
				ni, ok := index[d.targetName]
				if !ok {
					return nil, lineError(ErrUnknownState, d.line, "target state %q is never declared", d.targetName)
				}
				t.Next = ni
			}
			tokens[i] = t
		}
		states[si] = grammar.State{Name: s.name, Tokens: tokens}
	}

	g := &grammar.Grammar{States: states, Calls: calls}
	if !g.HasErrorToken(grammar.InitialState) {
		return nil, lineError(ErrInitialNoError, initialLine["INITIAL"], "INITIAL must carry an error descriptor")
	}
	return g, nil
}
