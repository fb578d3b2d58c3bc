package email

import "unicode/utf8"

// cursor is the state threaded through the parse stages. Stages never
// modify a cursor; they return a new one.
type cursor struct {
	remaining   string // unconsumed input
	accumulated string // canonical output so far
}

type scan uint8

const (
	scanRune   scan = iota // a real rune was found
	scanEOF                // input exhausted outside of a comment
	scanBroken             // nested '(', stray ')' or unterminated comment
)

// next returns the first rune at or after byte offset i that is not part
// of a (comment), together with the offset just past that rune.
func next(s string, i int) (rune, int, scan) {
	comment := false
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size

		switch {
		case r == '(':
			if comment {
				return 0, i, scanBroken
			}
			comment = true
		case r == ')':
			if !comment {
				return 0, i, scanBroken
			}
			comment = false
		case !comment:
			return r, i, scanRune
		}
	}
	if comment {
		return 0, i, scanBroken
	}
	return 0, i, scanEOF
}

// quoted returns the leading "..." span of s, honoring backslash escapes.
func quoted(s string) (string, bool) {
	if len(s) == 0 || s[0] != '"' {
		return "", false
	}

	escaped := false
	// '"' and '\' are ASCII; UTF-8 continuation bytes never collide with them.
	for i := 1; i < len(s); i++ {
		switch {
		case escaped:
			escaped = false
		case s[i] == '\\':
			escaped = true
		case s[i] == '"':
			return s[:i+1], true
		}
	}
	return "", false
}
