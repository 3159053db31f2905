/*
wmconf-check is a grammar-conformance test tool: it compiles a grammar
description and runs it over a sample input, reporting success or the
diagnostics produced. Every call identifier the grammar names is bound to
a no-op handler that returns to INITIAL, since this tool has no semantic
layer of its own — it only exercises the driver and recovery engine's
shape, not any particular window-manager's state.

Usage is

	wmconf-check [-e] <grammar_file> <source_file>

Flag -e means the source file is expected to contain syntax errors; the
tool exits non-zero if it parses cleanly instead.

Maximum length of either file is 1 MB.

Error codes:

	1: wrong command line arguments
	2: error reading a file
	3: invalid grammar description
	4: error creating a parser (missing handler, INITIAL with no error token)
	5: syntax error (or missing an expected one, with -e)
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tilewm/wmconfig/grammar"
	"github.com/tilewm/wmconfig/langdef"
	"github.com/tilewm/wmconfig/parser"
)

const (
	errUsage = iota + 1
	errFile
	errGrammar
	errParser
	errSyntax
)

const maxFileSize = 1 << 20

func main() {
	var expectError bool
	flag.Usage = printHelp
	flag.BoolVar(&expectError, "e", false, "source file is expected to contain syntax errors")
	flag.Parse()

	if flag.NArg() != 2 {
		printHelp()
	}

	grammarSrc := loadFile(flag.Arg(0))
	sourceSrc := loadFile(flag.Arg(1))

	g, e := langdef.ParseBytes(grammarSrc)
	if e != nil {
		reportError(errGrammar, e.Error())
	}

	p, e := parser.New(g, stubHandlers(g))
	if e != nil {
		reportError(errParser, e.Error())
	}

	result, e := p.Parse(sourceSrc, &parser.Context{Filename: flag.Arg(1)})
	if e != nil {
		reportError(errParser, e.Error())
	}

	hasErrors := len(result.Diagnostics) > 0
	switch {
	case hasErrors && !expectError:
		for _, d := range result.Diagnostics {
			fmt.Printf("  *** error: %s\n", d.Error)
		}
		os.Exit(errSyntax)
	case !hasErrors && expectError:
		reportError(errSyntax, "  *** expecting error, got success in %s", flag.Arg(1))
	case hasErrors:
		for _, d := range result.Diagnostics {
			fmt.Println("  *** error (expected):", d.Error)
		}
	default:
		fmt.Println("success")
	}
}

func printHelp() {
	fmt.Fprintln(os.Stderr, "Usage is  wmconf-check [-e] <grammar_file> <source_file>")
	flag.PrintDefaults()
	os.Exit(errUsage)
}

func reportError(code int, message string, args ...any) {
	if len(args) != 0 {
		message = fmt.Sprintf(message, args...)
	}
	fmt.Fprintln(os.Stderr, message)
	os.Exit(code)
}

func loadFile(name string) []byte {
	file, e := os.Open(name)
	if e != nil {
		reportError(errFile, e.Error())
	}
	defer file.Close()

	stat, e := file.Stat()
	if e != nil {
		reportError(errFile, e.Error())
	}

	size := stat.Size()
	if size > maxFileSize || size == 0 {
		reportError(errFile, "stat %s: invalid size (%d bytes)", name, size)
	}

	content := make([]byte, size)
	n, e := file.Read(content)
	if e != nil {
		reportError(errFile, e.Error())
	}
	if int64(n) != size {
		reportError(errFile, "short read on %s", name)
	}

	return content
}

// stubHandlers binds every call identifier g names to a handler that
// returns to INITIAL without touching any semantic state, so a grammar
// can be exercised before its real handlers exist.
func stubHandlers(g *grammar.Grammar) parser.Handlers {
	hs := make(parser.Handlers, len(g.Calls))
	for _, name := range g.Calls {
		hs[name] = func(hc *parser.HandlerContext) int {
			return grammar.InitialState
		}
	}
	return hs
}
