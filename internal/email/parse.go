// Package email parses and canonicalizes e-mail addresses: display names,
// comments, mailto: prefixes, quoted local parts and IP literal domains.
package email

import (
	"strings"

	"svokit/internal/domain"
	"svokit/internal/svo"
)

const invalidMessage = "Not a valid email address"

// Parse parses s into its canonical Address.
// Blank input returns the empty Address and no error.
// Anything else that is not an address returns a *svo.UnparsableError
// matching domain.ErrInvalidEmail.
func Parse(s string) (Address, error) {
	r := TryParse(s)
	if err := r.Unparsable(); err != nil {
		return Address{}, err
	}
	a, _ := r.Value()
	return a, nil
}

// MustParse is like Parse but panics on unparsable input.
func MustParse(s string) Address {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// TryParse classifies s as a parsed Address, absent (blank input) or unparsable.
func TryParse(s string) svo.Result[Address] {
	if svo.IsBlank(s) {
		return svo.Absent[Address]()
	}

	canonical, ok := parse(strings.TrimSpace(s))
	if !ok {
		return svo.Failed[Address](svo.NewUnparsable(s, invalidMessage, domain.ErrInvalidEmail))
	}
	return svo.Parsed(Address{value: canonical})
}
