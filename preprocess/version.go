package preprocess

import (
	"bufio"
	"bytes"
	"strings"
)

// Version identifies the configuration dialect a file appears to target.
type Version int

const (
	// VersionLegacyV3 is the default: the original parser decides for
	// the legacy dialect whenever none of the v4-only markers below
	// turn up anywhere in the file.
	VersionLegacyV3 Version = iota
	VersionV4
)

func (v Version) String() string {
	switch v {
	case VersionV4:
		return "v4"
	default:
		return "v3"
	}
}

// v4LineMarkers are directive names and headers that only exist in the v4
// dialect; finding any of them as a line's prefix is enough to decide the
// whole file is v4.
var v4LineMarkers = []string{
	"bindcode",
	"force_focus_wrapping",
	"# i3 config file (v4)",
	"workspace_layout",
}

// v4BindArgs are arguments to a bind/bindsym/bindcode statement that only
// existed in the v4 dialect: a bind line invoking one of these decides the
// file is v4 even with no other marker present.
var v4BindArgs = []string{
	"layout",
	"floating",
	"workspace",
	"focus left",
	"focus right",
	"focus up",
	"focus down",
	"border normal",
	"border 1pixel",
	"border pixel",
	"border borderless",
	"--no-startup-id",
	"bar",
}

// DetectVersion inspects src for the markers the original parser used to
// decide whether a file needs migration before it can be parsed under the
// current grammar. Absent any v4-only marker, a file is assumed to be the
// legacy v3 dialect, matching the original's default.
func DetectVersion(src []byte) Version {
	sc := bufio.NewScanner(bytes.NewReader(src))
	for sc.Scan() {
		line := sc.Text()
		for _, marker := range v4LineMarkers {
			if hasFoldPrefix(line, marker) {
				return VersionV4
			}
		}
		if hasFoldPrefix(line, "bind") {
			if arg, ok := bindCommandArg(line); ok {
				for _, marker := range v4BindArgs {
					if hasFoldPrefix(arg, marker) {
						return VersionV4
					}
				}
			}
		}
	}
	return VersionLegacyV3
}

// bindCommandArg returns the rest of a bind/bindsym/bindcode line starting
// at its third whitespace-separated field — the command that follows the
// key specifier, with its arguments — or "", false if the line doesn't
// have one.
func bindCommandArg(line string) (string, bool) {
	_, rest, ok := cutField(line)
	if !ok {
		return "", false
	}
	_, rest, ok = cutField(rest)
	if !ok {
		return "", false
	}
	return rest, true
}

// cutField splits off the first whitespace-separated field of s and skips
// the whitespace that follows it, the way the original's strchr/skip-space
// walk does.
func cutField(s string) (field, rest string, ok bool) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return "", "", false
	}
	rest = strings.TrimLeft(s[i:], " \t")
	if rest == "" {
		return "", "", false
	}
	return s[:i], rest, true
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// LegacyMigrator is the caller-supplied collaborator that rewrites a
// legacy-dialect buffer into the current one. The core and this package
// never implement a migrator themselves — invoking one, if the caller
// wants that at all, is entirely their decision.
type LegacyMigrator interface {
	Migrate(src []byte) ([]byte, error)
}

// Migrate runs m over src if src was detected as VersionLegacyV3, and
// returns src unchanged otherwise.
func Migrate(src []byte, m LegacyMigrator) ([]byte, error) {
	if DetectVersion(src) != VersionLegacyV3 {
		return src, nil
	}
	return m.Migrate(src)
}
