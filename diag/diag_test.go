package diag

import (
	"testing"

	"github.com/tilewm/wmconfig/grammar"
	"github.com/tilewm/wmconfig/source"
)

func TestExpectedMessage(t *testing.T) {
	tokens := []grammar.Token{
		{Kind: grammar.Literal, Literal: "bindsym"},
		{Kind: grammar.Literal, Literal: "bindcode"},
		{Kind: grammar.Word},
		{Kind: grammar.ErrorKind},
	}
	got := ExpectedMessage(tokens)
	want := "Expected one of these tokens: 'bindsym', 'bindcode', <word>"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExpectedMessageEmpty(t *testing.T) {
	got := ExpectedMessage(nil)
	want := "Expected one of these tokens: "
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCaretUnderline(t *testing.T) {
	src := source.New("test.conf", []byte("bogus line here\nworkspace 7\n"))
	got := CaretUnderline(src, 0, 0)
	want := "^^^^^^^^^^^^^^^"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCaretUnderlinePreservesTabs(t *testing.T) {
	src := source.New("test.conf", []byte("\t\tbogus\n"))
	got := CaretUnderline(src, 0, 2)
	want := "\t\t^^^^^"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCaretUnderlineMidLine(t *testing.T) {
	src := source.New("test.conf", []byte("workspace bogus\n"))
	got := CaretUnderline(src, 0, 10)
	want := "          ^^^^^"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
