// Package langdef compiles the textual grammar-description format into a
// *grammar.Grammar: a closed state enumeration with, per state, an
// ordered token table, plus the call-identifier dispatch table.
//
// The format is a flat, line-oriented description — one state per block,
// one descriptor per line:
//
//	state INITIAL
//	  'workspace'  -> WORKSPACE_NUM
//	  'exec'       -> EXEC_CMD
//	  word{name}   -> call(set_generic)
//	  end          -> INITIAL
//	  error        -> INITIAL
//
//	state WORKSPACE_NUM
//	  number{num}  -> call(set_workspace)
//	  error        -> INITIAL
//
//	state EXEC_CMD
//	  string{cmd}  -> call(set_exec)
//	  error        -> INITIAL
//
// A state block starts with a line of the form "state NAME". Every
// following line up to the next "state" line (or end of file) is a
// descriptor of the form:
//
//	DESCRIPTOR -> TARGET
//
// DESCRIPTOR is either a single-quoted literal spelling ('bindsym') or one
// of the reserved kind names word, string, number, line, end, error,
// optionally followed by {identifier} to capture the matched value.
// TARGET is either a state name or call(HANDLER_NAME).
//
// Blank lines and lines whose first non-blank character is '#' are
// ignored. There is exactly one state named INITIAL; it becomes state 0
// regardless of where it is declared, and it must carry an error
// descriptor — this is checked here rather than left for the driver to
// discover at the worst possible time.
package langdef
