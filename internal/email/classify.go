package email

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const localSymbols = "!#$%&'*+-./=?^_`{|}~"

var (
	punycodeLabel = regexp.MustCompile(`^xn--[a-z0-9-]{2,}$`)
	ipv6Groups    = regexp.MustCompile(`^(?:[a-f0-9]{1,4}:){7}[a-f0-9]{1,4}$`)
)

func isASCIIAlnum(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// isLocalChar accepts any non-ASCII rune. The dot is accepted here; the
// local part scanner is responsible for where it may appear.
func isLocalChar(r rune) bool {
	if r > unicode.MaxASCII {
		return true
	}
	return isASCIIAlnum(r) || strings.ContainsRune(localSymbols, r)
}

// isDomainChar does not cover '-' and '.'; those are structural.
func isDomainChar(r rune) bool {
	return r > unicode.MaxASCII || isASCIIAlnum(r) || r == '_'
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

// isTopLevelLabel expects an already lowercased label.
func isTopLevelLabel(label string) bool {
	if label == "" {
		return false
	}
	for _, r := range label {
		if r <= unicode.MaxASCII && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

func isPunycodeLabel(label string) bool {
	return punycodeLabel.MatchString(label)
}

// asIPv4Literal returns the bracketed form with leading zeros dropped,
// so 123.001.072.10 becomes [123.1.72.10].
func asIPv4Literal(domain string) (string, bool) {
	parts := strings.Split(domain, ".")
	if len(parts) != 4 {
		return "", false
	}

	octets := make([]string, 0, 4)
	for _, p := range parts {
		if p == "" {
			return "", false
		}
		for i := 0; i < len(p); i++ {
			if p[i] < '0' || p[i] > '9' {
				return "", false
			}
		}
		digits := strings.TrimLeft(p, "0")
		if digits == "" {
			digits = "0"
		}
		if len(digits) > 3 {
			return "", false
		}
		n, err := strconv.Atoi(digits)
		if err != nil || n > 255 {
			return "", false
		}
		octets = append(octets, strconv.Itoa(n))
	}
	return "[" + strings.Join(octets, ".") + "]", true
}

// asIPv6Literal only knows the full eight group notation; "::" is rejected.
func asIPv6Literal(domain string) (string, bool) {
	domain = strings.ToLower(domain)
	domain = strings.TrimPrefix(domain, "ipv6:")

	if !ipv6Groups.MatchString(domain) {
		return "", false
	}
	return "[IPv6:" + domain + "]", true
}
