package source

import "testing"

func TestLineColFirstLine(t *testing.T) {
	s := New("test.conf", []byte("abc\ndef\n"))
	line, col := s.LineCol(1)
	if line != 1 || col != 2 {
		t.Fatalf("got line=%d col=%d, want 1, 2", line, col)
	}
}

func TestLineColSecondLine(t *testing.T) {
	s := New("test.conf", []byte("abc\ndef\n"))
	line, col := s.LineCol(5)
	if line != 2 || col != 2 {
		t.Fatalf("got line=%d col=%d, want 2, 2", line, col)
	}
}

func TestLineStart(t *testing.T) {
	s := New("test.conf", []byte("abc\ndef\nghi"))
	samples := []struct {
		pos  int
		want int
	}{
		{0, 0},
		{3, 0},
		{4, 4},
		{7, 4},
		{8, 8},
		{10, 8},
	}
	for _, sa := range samples {
		if got := s.LineStart(sa.pos); got != sa.want {
			t.Errorf("LineStart(%d) = %d, want %d", sa.pos, got, sa.want)
		}
	}
}

func TestLineColClampsOutOfRange(t *testing.T) {
	s := New("test.conf", []byte("abc"))
	if line, _ := s.LineCol(-5); line != 1 {
		t.Fatalf("got line=%d, want 1 for negative offset", line)
	}
	if line, _ := s.LineCol(999); line != 1 {
		t.Fatalf("got line=%d, want 1 for an offset past the content", line)
	}
}

func TestPosResolvesLineCol(t *testing.T) {
	s := New("test.conf", []byte("abc\ndef\n"))
	p := NewPos(s, 5)
	if p.Line() != 2 || p.Col() != 2 {
		t.Fatalf("got line=%d col=%d, want 2, 2", p.Line(), p.Col())
	}
	if p.SourceName() != "test.conf" {
		t.Fatalf("got %q, want test.conf", p.SourceName())
	}
}

func TestPosWithNilSource(t *testing.T) {
	p := NewPos(nil, 3)
	if p.SourceName() != "" {
		t.Fatalf("got %q, want empty string for a nil source", p.SourceName())
	}
}
