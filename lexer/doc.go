/*
Package lexer has two deliberately preserved quirks, both inherited from
the window manager's original hand-written parser rather than introduced
here:

Backslash-quote ambiguity: a quoted string's closing quote is found by
scanning for a '"' not immediately preceded by '\\'. This means a value
ending in two backslashes followed by a quote — `"foo\\\\"` — is read as
the quote still being escaped (because the scan only looks one byte
back), so the string stays open past it. Values containing a single
trailing backslash behave as most users expect; only the doubled case is
surprising, and it is surprising in the original implementation too.
Fixing it would change the meaning of existing configuration files, so the
behavior is kept rather than "corrected".

Case sensitivity: literal tokens ('workspace, 'bindsym, ...) match
case-insensitively; bareword word/string captures do not get any
equivalent folding, even when a handler treats the captured value as a
keyword. This is intentional asymmetry inherited from the source grammar,
not an oversight in this package.
*/
package lexer
