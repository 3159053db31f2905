/*
wmcgen compiles a grammar description into a Go source file defining a
*grammar.Grammar literal, so a binary that embeds a grammar never has to
pay the cost of the textual compiler at startup.

Usage is

	wmcgen [-p <name>] [-v <name>] [-o <name>] <file>

-o <name> defines the output file name, default is the input file name
with its extension replaced by ".go";

-p <name> defines the generated package name, default is the directory
name of the output file;

-v <name> defines the generated Go variable name, default is "Grammar".

<file> is a grammar description file parsable by langdef.ParseBytes.
*/
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/tilewm/wmconfig/grammar"
	"github.com/tilewm/wmconfig/langdef"
)

var (
	inFileName, outFileName, packageName, varName string
)

var identRe = regexp.MustCompile("^[A-Za-z_][A-Za-z_0-9]*$")

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage is  wmcgen [-p <name>] [-v <name>] [-o <name>] <file>")
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output(), "  <file>")
		fmt.Fprintln(flag.CommandLine.Output(), "\tgrammar description file name")
	}

	flag.StringVar(&outFileName, "o", "", "output file name, default is the input file name with .go extension")
	flag.StringVar(&packageName, "p", "", "Go package name, default is the output file's directory name")
	flag.StringVar(&varName, "v", "Grammar", "Go variable name for the generated *grammar.Grammar")
	flag.Parse()
	inFileName = flag.Arg(0)
	if inFileName == "" {
		flag.Usage()
		os.Exit(2)
	}

	if outFileName == "" {
		ext := filepath.Ext(inFileName)
		outFileName = inFileName[:len(inFileName)-len(ext)] + ".go"
	}

	src, err := os.ReadFile(inFileName)
	var g *grammar.Grammar
	if err == nil {
		g, err = langdef.ParseBytes(src)
	}
	var content []byte
	if err == nil {
		content, err = generate(g)
	}
	if err == nil {
		err = os.WriteFile(outFileName, content, 0o666)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(3)
	}
}

func generate(g *grammar.Grammar) ([]byte, error) {
	if packageName == "" {
		dir, err := filepath.Abs(outFileName)
		if err != nil {
			return nil, err
		}
		packageName = filepath.Base(filepath.Dir(dir))
	}
	if !identRe.MatchString(packageName) {
		return nil, fmt.Errorf("invalid package name: %s", packageName)
	}
	if !identRe.MatchString(varName) {
		return nil, fmt.Errorf("invalid variable name: %s", varName)
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by wmcgen. DO NOT EDIT.\n\n")
	buf.WriteString("package " + packageName + "\n\n")
	buf.WriteString("import \"github.com/tilewm/wmconfig/grammar\"\n\n")
	fmt.Fprintf(&buf, "var %s = &grammar.Grammar{\n", varName)

	buf.WriteString("\tStates: []grammar.State{\n")
	for i, st := range g.States {
		fmt.Fprintf(&buf, "\t\t{ // %d: %s\n\t\t\tName: %q,\n\t\t\tTokens: []grammar.Token{\n", i, st.Name, st.Name)
		for _, tok := range st.Tokens {
			fmt.Fprintf(&buf, "\t\t\t\t{Kind: %s, Literal: %q, Identifier: %q, Next: %d, Call: %d},\n",
				kindConst(tok.Kind), tok.Literal, tok.Identifier, tok.Next, tok.Call)
		}
		buf.WriteString("\t\t\t},\n\t\t},\n")
	}
	buf.WriteString("\t},\n")

	buf.WriteString("\tCalls: []string{\n")
	for _, c := range g.Calls {
		fmt.Fprintf(&buf, "\t\t%q,\n", c)
	}
	buf.WriteString("\t},\n}\n")

	return buf.Bytes(), nil
}

func kindConst(k grammar.Kind) string {
	switch k {
	case grammar.Literal:
		return "grammar.Literal"
	case grammar.Word:
		return "grammar.Word"
	case grammar.String:
		return "grammar.String"
	case grammar.Number:
		return "grammar.Number"
	case grammar.Line:
		return "grammar.Line"
	case grammar.End:
		return "grammar.End"
	default:
		return "grammar.ErrorKind"
	}
}
