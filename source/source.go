// Package source holds the config file's byte buffer and translates byte
// offsets into line/column positions for diagnostics.
package source

import (
	"unicode/utf8"
)

// Source is an immutable view of one complete configuration file.
type Source struct {
	name       string
	content    []byte
	lineStarts []int
}

// New indexes content's line starts. content is not copied; callers must
// not mutate it afterwards.
func New(name string, content []byte) *Source {
	s := &Source{name: name, content: content}
	s.lineStarts = append(s.lineStarts, 0)
	for i, b := range content {
		if b == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}
	return s
}

func (s *Source) Name() string   { return s.name }
func (s *Source) Content() []byte { return s.content }
func (s *Source) Len() int       { return len(s.content) }

// LineCol returns the 1-based line and column for byte offset pos.
// pos is clamped to [0, Len()].
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	lineIndex := s.findLineIndex(pos)
	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCount(s.content[lineStart:pos]) + 1
}

// LineStart returns the byte offset of the start of the line containing pos:
// the byte after the most recent '\n', or 0 if pos is on the first line.
func (s *Source) LineStart(pos int) int {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}
	return s.lineStarts[s.findLineIndex(pos)]
}

// Line returns the 1-based line number that contains the given byte offset.
func (s *Source) Line(pos int) int {
	line, _ := s.LineCol(pos)
	return line
}

func (s *Source) findLineIndex(pos int) int {
	l, h := 0, len(s.lineStarts)-1
	for l < h {
		m := (l + h + 1) >> 1
		if s.lineStarts[m] <= pos {
			l = m
		} else {
			h = m - 1
		}
	}
	return l
}

// Pos identifies a resolved byte offset within a Source, carrying its line
// and column so diagnostics never have to re-resolve it.
type Pos struct {
	src       *Source
	Offset    int
	line, col int
}

// NewPos resolves offset's line/col against src. src may be nil, in which
// case the position carries no line/column information.
func NewPos(src *Source, offset int) Pos {
	p := Pos{src: src, Offset: offset}
	if src != nil {
		p.line, p.col = src.LineCol(offset)
	}
	return p
}

func (p Pos) Source() *Source { return p.src }
func (p Pos) Line() int       { return p.line }
func (p Pos) Col() int        { return p.col }

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.Name()
}
