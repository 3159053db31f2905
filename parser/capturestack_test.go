package parser

import "testing"

func TestCapturedStackStringAccumulates(t *testing.T) {
	s := &capturedStack{}
	if err := s.pushString("t", "a"); err != nil {
		t.Fatalf("pushString: %v", err)
	}
	if err := s.pushString("t", "b"); err != nil {
		t.Fatalf("pushString: %v", err)
	}
	got, ok := s.getString("t")
	if !ok || got != "a,b" {
		t.Fatalf("got (%q, %v), want (%q, true)", got, ok, "a,b")
	}
}

func TestCapturedStackLongDoesNotAccumulate(t *testing.T) {
	s := &capturedStack{}
	if err := s.pushLong("n", 1); err != nil {
		t.Fatalf("pushLong: %v", err)
	}
	if err := s.pushLong("n", 2); err != nil {
		t.Fatalf("pushLong: %v", err)
	}
	n, ok := s.getLong("n")
	if !ok || n != 1 {
		t.Fatalf("got (%d, %v), want (1, true): pushLong must not merge", n, ok)
	}
}

func TestCapturedStackAbsentIdentifier(t *testing.T) {
	s := &capturedStack{}
	if _, ok := s.getString("missing"); ok {
		t.Fatalf("expected absent identifier to report ok=false")
	}
	if n, ok := s.getLong("missing"); ok || n != 0 {
		t.Fatalf("got (%d, %v), want (0, false)", n, ok)
	}
}

func TestCapturedStackClear(t *testing.T) {
	s := &capturedStack{}
	_ = s.pushString("a", "x")
	_ = s.pushLong("b", 1)
	s.clear()
	if _, ok := s.getString("a"); ok {
		t.Fatalf("expected clear to release string entry")
	}
	if _, ok := s.getLong("b"); ok {
		t.Fatalf("expected clear to release long entry")
	}
}

func TestCapturedStackOverflow(t *testing.T) {
	s := &capturedStack{}
	for i := 0; i < stackCapacity; i++ {
		if err := s.pushLong(string(rune('a'+i)), int64(i)); err != nil {
			t.Fatalf("pushLong %d: %v", i, err)
		}
	}
	if err := s.pushLong("overflow", 99); err == nil {
		t.Fatalf("expected overflow error on the 11th identified capture")
	}
}
