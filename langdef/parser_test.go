package langdef

import (
	"testing"

	"github.com/tilewm/wmconfig/grammar"
)

const sampleGrammar = `
state INITIAL
  'workspace'        -> WORKSPACE_NUM
  word{name}         -> call(set_generic)
  end                -> INITIAL
  error              -> INITIAL

state WORKSPACE_NUM
  number{num}        -> call(set_workspace)
  error              -> INITIAL
`

func TestParseStringBuildsStates(t *testing.T) {
	g, err := ParseString(sampleGrammar)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if len(g.States) != 2 {
		t.Fatalf("got %d states, want 2", len(g.States))
	}
	if g.States[grammar.InitialState].Name != "INITIAL" {
		t.Fatalf("state 0 is %q, want INITIAL", g.States[grammar.InitialState].Name)
	}
	if !g.HasErrorToken(grammar.InitialState) {
		t.Fatalf("INITIAL has no error descriptor")
	}

	ws := g.StateByName("WORKSPACE_NUM")
	if ws < 0 {
		t.Fatalf("WORKSPACE_NUM not found")
	}
	if len(g.Calls) != 2 {
		t.Fatalf("got %d calls, want 2", len(g.Calls))
	}
}

func TestParseStringLiteralAndIdentifier(t *testing.T) {
	g, err := ParseString(sampleGrammar)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	initial := g.States[grammar.InitialState]
	lit := initial.Tokens[0]
	if lit.Kind != grammar.Literal || lit.Literal != "workspace" {
		t.Fatalf("got %+v, want literal 'workspace'", lit)
	}

	word := initial.Tokens[1]
	if word.Kind != grammar.Word || word.Identifier != "name" {
		t.Fatalf("got %+v, want word{name}", word)
	}
}

func TestParseStringForwardReference(t *testing.T) {
	const g = `
state INITIAL
  'mode' -> MODE
  error  -> INITIAL

state MODE
  end   -> INITIAL
  error -> INITIAL
`
	if _, err := ParseString(g); err != nil {
		t.Fatalf("forward reference to MODE should resolve: %v", err)
	}
}

func TestParseStringMissingInitialErrorToken(t *testing.T) {
	const g = `
state INITIAL
  'x' -> INITIAL
`
	if _, err := ParseString(g); err == nil {
		t.Fatalf("expected error for INITIAL missing <error> descriptor")
	}
}

func TestParseStringNoInitialState(t *testing.T) {
	const g = `
state FOO
  error -> FOO
`
	if _, err := ParseString(g); err == nil {
		t.Fatalf("expected error for grammar with no INITIAL state")
	}
}

func TestParseStringUnknownTargetState(t *testing.T) {
	const g = `
state INITIAL
  'x'   -> NOWHERE
  error -> INITIAL
`
	if _, err := ParseString(g); err == nil {
		t.Fatalf("expected error for undeclared target state")
	}
}

func TestParseStringDuplicateState(t *testing.T) {
	const g = `
state INITIAL
  error -> INITIAL

state INITIAL
  error -> INITIAL
`
	if _, err := ParseString(g); err == nil {
		t.Fatalf("expected error for duplicate state declaration")
	}
}

func TestParseStringErrorDescriptorCannotCapture(t *testing.T) {
	const g = `
state INITIAL
  error{x} -> INITIAL
`
	if _, err := ParseString(g); err == nil {
		t.Fatalf("expected error for error descriptor with capture")
	}
}
