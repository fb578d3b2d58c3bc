package email

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxLength       = 254
	maxLocalLength  = 64
	minQuotedLength = 3
	maxLabelLength  = 63
)

type stage func(cursor) (cursor, bool)

// stages run in order; the first failure aborts the parse.
var stages = []stage{
	stripDisplayName,
	stripMailto,
	local,
	domainPart,
}

// parse returns the canonical form of a trimmed, non-blank address.
func parse(s string) (string, bool) {
	if !utf8.ValidString(s) {
		return "", false
	}

	c := cursor{remaining: s}
	for _, st := range stages {
		var ok bool
		if c, ok = st(c); !ok {
			return "", false
		}
	}
	if c.remaining != "" {
		return "", false
	}
	return c.accumulated, true
}

// stripDisplayName removes a leading "quoted name", a trailing <...>
// wrapper, or a trailing (comment). It is applied once.
func stripDisplayName(c cursor) (cursor, bool) {
	s := c.remaining

	switch {
	case strings.HasPrefix(s, `"`):
		q, ok := quoted(s)
		if !ok {
			return cursor{}, false
		}
		rest := s[len(q):]
		r, _ := utf8.DecodeRuneInString(rest)
		if rest != "" && isWhitespace(r) {
			return cursor{remaining: strings.TrimSpace(rest)}, true
		}
		// not a display name but a quoted local part
		return c, true

	case strings.HasSuffix(s, ">"):
		lt := strings.LastIndexByte(s, '<')
		if lt < 0 {
			return cursor{}, false
		}
		return cursor{remaining: s[lt+1 : len(s)-1]}, true

	case strings.HasSuffix(s, ")"):
		start := strings.LastIndexByte(s, '(')
		if start < 0 || strings.ContainsRune(s[start:len(s)-1], ')') {
			return cursor{}, false
		}
		return cursor{remaining: strings.TrimSpace(s[:start])}, true
	}
	return c, true
}

func stripMailto(c cursor) (cursor, bool) {
	const prefix = "mailto:"
	if len(c.remaining) >= len(prefix) && strings.EqualFold(c.remaining[:len(prefix)], prefix) {
		c.remaining = c.remaining[len(prefix):]
	}
	return c, true
}

func local(c cursor) (cursor, bool) {
	if nc, ok := dotAtomLocal(c); ok {
		return nc, true
	}
	return quotedLocal(c)
}

func dotAtomLocal(c cursor) (cursor, bool) {
	var b strings.Builder
	n := 0
	last := rune(0)

	for i := 0; ; {
		r, j, st := next(c.remaining, i)
		if st != scanRune {
			return cursor{}, false
		}
		i = j

		switch {
		case r == '@':
			if n == 0 || last == '.' {
				return cursor{}, false
			}
			return cursor{
				remaining:   c.remaining[i:],
				accumulated: c.accumulated + b.String() + "@",
			}, true
		case r == '.' && (n == 0 || last == '.'):
			return cursor{}, false
		case n < maxLocalLength && isLocalChar(r):
			b.WriteRune(r)
			n++
			last = r
		default:
			return cursor{}, false
		}
	}
}

func quotedLocal(c cursor) (cursor, bool) {
	q, ok := quoted(c.remaining)
	if !ok {
		return cursor{}, false
	}
	n := utf8.RuneCountInString(q)
	if n < minQuotedLength || n > maxLocalLength {
		return cursor{}, false
	}
	rest := c.remaining[len(q):]
	if !strings.HasPrefix(rest, "@") {
		return cursor{}, false
	}
	return cursor{
		remaining:   rest[1:],
		accumulated: c.accumulated + q + "@",
	}, true
}

func domainPart(c cursor) (cursor, bool) {
	if nc, ok := labeledDomain(c); ok {
		return nc, true
	}
	return ipDomain(c)
}

func labeledDomain(c cursor) (cursor, bool) {
	var done, label strings.Builder
	n := 0 // runes in the current label
	last := rune(0)

	for i := 0; ; {
		r, j, st := next(c.remaining, i)
		if st == scanBroken {
			return cursor{}, false
		}
		if st == scanEOF {
			break
		}
		i = j

		switch {
		case r == '.':
			if n == 0 || last == '-' || n > maxLabelLength {
				return cursor{}, false
			}
			done.WriteString(label.String())
			done.WriteByte('.')
			label.Reset()
			n = 0
		case r == '-':
			if n == 0 {
				return cursor{}, false
			}
			label.WriteRune(r)
			n++
		case isDomainChar(r):
			// simple per-rune mapping: 'İ' becomes 'i', never "i" + U+0307
			label.WriteRune(unicode.ToLower(r))
			n++
		default:
			return cursor{}, false
		}
		last = r
	}

	top := label.String()
	domain := done.String() + top
	address := c.accumulated + domain

	if utf8.RuneCountInString(address) > maxLength ||
		utf8.RuneCountInString(domain) <= 1 ||
		last == '-' ||
		n > maxLabelLength ||
		!(isTopLevelLabel(top) || isPunycodeLabel(top)) {
		return cursor{}, false
	}
	return cursor{accumulated: address}, true
}

// ipDomain sees the raw remainder; comments are not allowed inside IP literals.
func ipDomain(c cursor) (cursor, bool) {
	d := c.remaining
	if len(d) >= 2 && d[0] == '[' && d[len(d)-1] == ']' {
		d = d[1 : len(d)-1]
	}

	if ip, ok := asIPv4Literal(d); ok {
		return cursor{accumulated: c.accumulated + ip}, true
	}
	if ip, ok := asIPv6Literal(d); ok {
		return cursor{accumulated: c.accumulated + ip}, true
	}
	return cursor{}, false
}
