package grammar

import "testing"

func TestKindString(t *testing.T) {
	samples := []struct {
		k    Kind
		want string
	}{
		{Literal, "literal"},
		{Word, "word"},
		{String, "string"},
		{Number, "number"},
		{Line, "line"},
		{End, "end"},
		{ErrorKind, "error"},
	}
	for _, s := range samples {
		if got := s.k.String(); got != s.want {
			t.Errorf("Kind(%d).String() = %q, want %q", s.k, got, s.want)
		}
	}
}

func TestStateByName(t *testing.T) {
	g := &Grammar{States: []State{
		{Name: "INITIAL"},
		{Name: "MODE"},
	}}
	if i := g.StateByName("MODE"); i != 1 {
		t.Fatalf("got %d, want 1", i)
	}
	if i := g.StateByName("NOWHERE"); i != -1 {
		t.Fatalf("got %d, want -1", i)
	}
}

func TestHasErrorToken(t *testing.T) {
	g := &Grammar{States: []State{
		{Name: "INITIAL", Tokens: []Token{{Kind: Literal, Literal: "x"}, {Kind: ErrorKind}}},
		{Name: "MODE", Tokens: []Token{{Kind: Word}}},
	}}
	if !g.HasErrorToken(0) {
		t.Fatalf("expected state 0 to have an error token")
	}
	if g.HasErrorToken(1) {
		t.Fatalf("expected state 1 to have no error token")
	}
}
