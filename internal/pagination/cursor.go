package pagination

import (
	"encoding/base64"
	"strings"

	"svokit/internal/domain"
	"svokit/internal/email"
)

// Cursor points just past the last address of a page; listings are
// ordered by canonical address.
type Cursor struct {
	After email.Address
}

// Encode cursor as base64(canonical address)
func Encode(c Cursor) string {
	return base64.RawURLEncoding.EncodeToString([]byte(c.After.String()))
}

// Decode only accepts cursors that carry an address in canonical form.
func Decode(s string) (Cursor, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Cursor{}, domain.ErrInvalidCursor
	}

	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, domain.ErrInvalidCursor
	}

	raw := string(b)
	a, err := email.Parse(raw)
	if err != nil || a.IsEmpty() || a.String() != raw {
		return Cursor{}, domain.ErrInvalidCursor
	}

	return Cursor{After: a}, nil
}
