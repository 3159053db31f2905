// Package parser implements the driver: the main loop that walks a
// compiled grammar.Grammar over an input buffer, the fixed-capacity
// captured-value and state-trail stacks, the Handler boundary, and the
// recovery engine that resumes parsing after a syntax error.
package parser

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tilewm/wmconfig/diag"
	"github.com/tilewm/wmconfig/grammar"
	"github.com/tilewm/wmconfig/lexer"
	"github.com/tilewm/wmconfig/source"
)

// Parser pairs a compiled grammar with the handlers that implement its
// call identifiers. One Parser can run any number of concurrent Parse
// calls: all mutable state lives in the per-call run, never on Parser.
type Parser struct {
	grammar  *grammar.Grammar
	handlers Handlers

	// Logger receives one structured event per syntax error found. The
	// zero value is zerolog's no-op logger, so a Parser built without
	// touching this field is silent.
	Logger zerolog.Logger
}

// New validates g against hs and returns a Parser, or an error if the
// grammar is unusable: a call identifier with no matching handler, or an
// INITIAL state with no <error> descriptor, are both grammar bugs that
// would otherwise surface confusingly deep inside a parse.
func New(g *grammar.Grammar, hs Handlers) (*Parser, error) {
	for i, name := range g.Calls {
		if _, ok := hs[name]; !ok {
			return nil, missingHandlerError(name, i)
		}
	}
	if !g.HasErrorToken(grammar.InitialState) {
		return nil, noInitialErrorTokenError()
	}
	return &Parser{grammar: g, handlers: hs}, nil
}

// Parse runs the driver over input, reporting diagnostics into ctx and
// the returned Result. It never returns a non-nil error for a malformed
// configuration file — malformed input only ever produces Diagnostics.
// A non-nil error return means the grammar itself is broken.
func (p *Parser) Parse(input []byte, ctx *Context) (*Result, error) {
	result := &Result{ID: uuid.New()}
	rn := &run{
		p:        p,
		src:      source.New(ctx.Filename, input),
		input:    input,
		values:   &capturedStack{},
		trail:    newStateTrail(grammar.InitialState),
		state:    grammar.InitialState,
		result:   result,
		ctx:      ctx,
		reporter: &diag.Reporter{Logger: p.Logger, Filename: ctx.Filename, ParseID: result.ID},
	}
	if err := rn.loop(); err != nil {
		return nil, err
	}
	return result, nil
}

// run holds the mutable state of one Parse call.
type run struct {
	p     *Parser
	src   *source.Source
	input []byte

	values *capturedStack
	trail  *stateTrail
	state  int

	result   *Result
	ctx      *Context
	reporter *diag.Reporter
}

// loop is the main parse loop, spec'd to visit every byte offset from 0
// to len(input) inclusive: the trailing offset is a legitimate position,
// since that is the only place an 'end' descriptor can match end of
// input rather than a line terminator.
func (rn *run) loop() error {
	pos := 0
	for {
		pos = lexer.SkipHSpace(rn.input, pos)
		atTerminal := pos >= len(rn.input)

		tokens := rn.p.grammar.States[rn.state].Tokens
		matched := false
		for _, d := range tokens {
			if d.Kind == grammar.ErrorKind {
				continue
			}
			m, ok := lexer.Try(d.Kind, d.Literal, rn.input, pos)
			if !ok {
				continue
			}
			matched = true

			if d.Identifier != "" {
				if err := rn.capture(d, m); err != nil {
					return err
				}
			}

			tokenPos := source.NewPos(rn.src, pos)
			pos += m.Consumed
			if err := rn.transition(d, tokenPos); err != nil {
				return err
			}
			break
		}

		if !matched {
			next, err := rn.recover(pos, tokens)
			if err != nil {
				return err
			}
			pos = next
		}

		if atTerminal {
			return nil
		}
	}
}

func (rn *run) capture(d grammar.Token, m lexer.Match) error {
	if d.Kind == grammar.Number {
		return rn.values.pushLong(d.Identifier, m.Long)
	}
	return rn.values.pushString(d.Identifier, m.Text)
}

// transition applies descriptor d's effect: a direct jump to d.Next, or,
// if d.Next is the CallState sentinel, a handler invocation whose return
// value becomes the next state. After a handler invocation the
// captured-value stack is cleared, and it is also cleared whenever the
// state landed on is INITIAL — a directive's captures must never leak into
// the next one. A direct jump to any other state keeps the captures.
func (rn *run) transition(d grammar.Token, pos source.Pos) error {
	next := d.Next
	if next == grammar.CallState {
		handler := rn.p.handlers[rn.p.grammar.Calls[d.Call]]
		hc := &HandlerContext{values: rn.values, pos: pos, result: rn.result}
		next = handler(hc)
		rn.values.clear()
	}

	rn.state = next
	if next == grammar.InitialState {
		rn.values.clear()
	}
	return rn.trail.push(next)
}

// recover runs after a position fails to match any of tokens in the
// current state: it reports a diagnostic, clears the captured-value
// stack, walks the state trail from most to least recently entered
// looking for a state whose token table carries an <error> descriptor,
// transitions there, and advances the cursor to the next '\n' (or end of
// input). The '\n' itself is not consumed: the next loop iteration starts
// on it, so the recovered state needs a descriptor (normally 'end') that
// matches it.
func (rn *run) recover(pos int, tokens []grammar.Token) (int, error) {
	lineStart := rn.src.LineStart(pos)
	lineNo := rn.src.Line(pos)

	d := rn.reporter.Report(rn.src, pos, lineStart, lineNo, tokens)
	rn.result.Diagnostics = append(rn.result.Diagnostics, *d)
	rn.ctx.HasErrors = true
	rn.values.clear()

	errTok, ok := rn.findRecoveryToken()
	if !ok {
		return 0, noRecoveryStateError()
	}
	if err := rn.transition(errTok, source.NewPos(rn.src, pos)); err != nil {
		return 0, err
	}

	next := pos
	for next < len(rn.input) && rn.input[next] != '\n' {
		next++
	}
	return next, nil
}

func (rn *run) findRecoveryToken() (grammar.Token, bool) {
	for _, s := range rn.trail.visitedDescending() {
		for _, t := range rn.p.grammar.States[s].Tokens {
			if t.Kind == grammar.ErrorKind {
				return t, true
			}
		}
	}
	return grammar.Token{}, false
}
