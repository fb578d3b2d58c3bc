package validate

import (
	"strings"
	"unicode/utf8"

	"svokit/internal/domain"
)

const maxNameLength = 200

// NormalizeName trims the name and collapses inner runs of whitespace.
func NormalizeName(s string) (string, error) {
	name := strings.Join(strings.Fields(s), " ")
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return "", domain.ErrInvalidName
	}
	return name, nil
}
