/*
wmconf parses a tiling-window-manager configuration file end to end:
variable substitution, legacy-version detection, parsing against the
worked example grammar in examples/wmconf, and a report of whatever
diagnostics came out of it, plus a duplicate-binding warning pass.

Usage is

	wmconf [-v] [-json] <conf_file>

-v turns on debug-level logging of every input line before parsing, the
way the original parser's DLOG did.

-json prints diagnostics as one JSON object per line instead of the
human-readable form.
*/
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tilewm/wmconfig/diag"
	"github.com/tilewm/wmconfig/examples/wmconf"
	"github.com/tilewm/wmconfig/preprocess"
)

func main() {
	var verbose, asJSON bool
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage is  wmconf [-v] [-json] <conf_file>")
		flag.PrintDefaults()
	}
	flag.BoolVar(&verbose, "v", false, "log every input line before parsing")
	flag.BoolVar(&asJSON, "json", false, "print diagnostics as JSON")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	name := flag.Arg(0)

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	content, err := os.ReadFile(name)
	if err != nil {
		logger.Error().Err(err).Str("file", name).Msg("cannot read config file")
		os.Exit(1)
	}

	if verbose {
		logDebugLines(logger, name, content)
	}

	if preprocess.DetectVersion(content) == preprocess.VersionLegacyV3 {
		logger.Warn().Str("file", name).Msg("file looks like a legacy (v3) config; no migrator is wired into this tool")
	}

	cfg, result, err := wmconf.Parse(name, content)
	if err != nil {
		logger.Error().Err(err).Str("file", name).Msg("parse failed")
		os.Exit(1)
	}

	exitCode := 0
	if len(result.Diagnostics) > 0 {
		exitCode = 1
		if asJSON {
			printJSON(result.Diagnostics)
		} else {
			printHuman(name, result.Diagnostics)
		}
	}

	for _, dup := range wmconf.CheckDuplicateBindings(cfg) {
		exitCode = 1
		scope := dup.Mode
		if scope == "" {
			scope = "(top level)"
		}
		fmt.Printf("warning: key %q bound %d times in %s\n", dup.Key, dup.Count, scope)
	}

	os.Exit(exitCode)
}

func logDebugLines(logger zerolog.Logger, name string, content []byte) {
	sc := bufio.NewScanner(bytes.NewReader(content))
	n := 0
	for sc.Scan() {
		n++
		logger.Debug().Str("file", name).Int("line", n).Str("text", sc.Text()).Msg("input line")
	}
}

func printHuman(name string, diags []diag.Diagnostic) {
	for _, d := range diags {
		fmt.Printf("%s:%d:%d: %s\n", name, d.Line, d.Col, d.Error)
		fmt.Println(strings.SplitN(d.Input, "\n", -1)[d.Line-1])
		fmt.Println(d.ErrorPosition)
	}
}

func printJSON(diags []diag.Diagnostic) {
	enc := json.NewEncoder(os.Stdout)
	for _, d := range diags {
		_ = enc.Encode(d)
	}
}
