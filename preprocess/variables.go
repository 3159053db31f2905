// Package preprocess implements the two external collaborators the core
// parser sees only through a caller-supplied interface or not at all:
// "$name" variable substitution and legacy-version detection, both grounded
// on the original parser's pre-tokenization scan of the raw buffer.
package preprocess

import (
	"bufio"
	"bytes"
	"sort"
	"strings"
)

// CollectVariables scans src line by line for "set $name value" lines and
// returns the accumulated name->value table. Lines are scanned in
// declaration order, so later "set" lines for the same name overwrite
// earlier ones, matching the original's last-write-wins table.
func CollectVariables(src []byte) map[string]string {
	vars := make(map[string]string)
	sc := bufio.NewScanner(bytes.NewReader(src))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		rest, ok := cutKeyword(line, "set")
		if !ok {
			continue
		}
		rest = strings.TrimLeft(rest, " \t")
		if !strings.HasPrefix(rest, "$") {
			continue
		}
		name, value, ok := strings.Cut(rest[1:], " ")
		if !ok {
			name, value, ok = strings.Cut(rest[1:], "\t")
		}
		if !ok || name == "" {
			continue
		}
		vars[name] = strings.TrimSpace(value)
	}
	return vars
}

func cutKeyword(line, kw string) (string, bool) {
	if len(line) < len(kw) || !strings.EqualFold(line[:len(kw)], kw) {
		return "", false
	}
	rest := line[len(kw):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return rest, true
}

// Substitute replaces every occurrence of "$name" in src with its value
// from vars, longest name first so "$workspace_name" is never partially
// shadowed by a shorter "$workspace" entry. Names not present in vars are
// left untouched, exactly as the original parser leaves undefined
// variables in the output for the lexer to choke on (a $-prefixed word
// with no matching literal descriptor).
func Substitute(src []byte, vars map[string]string) []byte {
	if len(vars) == 0 {
		return src
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })

	out := src
	for _, name := range names {
		out = bytes.ReplaceAll(out, []byte("$"+name), []byte(vars[name]))
	}
	return out
}
