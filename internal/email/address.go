package email

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Address is a canonical e-mail address: comments and display name
// removed, domain lowercased, IP literals bracketed and normalized.
//
// The zero value is the empty address. Two addresses are equal (==) iff
// their canonical strings are identical, so Address works as a map key.
type Address struct {
	value string
}

func (a Address) String() string { return a.value }

func (a Address) IsEmpty() bool { return a.value == "" }

// Len returns the number of characters (runes) of the canonical form.
func (a Address) Len() int {
	return utf8.RuneCountInString(a.value)
}

// IsIPBased reports whether the domain is an IP literal.
func (a Address) IsIPBased() bool {
	return strings.HasSuffix(a.value, "]")
}

func (a Address) Equals(other Address) bool {
	return a.value == other.value
}

// LocalPart returns everything before the last '@'. A quoted local part
// is returned with its quotes.
func (a Address) LocalPart() string {
	at := strings.LastIndexByte(a.value, '@')
	if at < 0 {
		return ""
	}
	return a.value[:at]
}

func (a Address) Domain() string {
	at := strings.LastIndexByte(a.value, '@')
	if at < 0 {
		return ""
	}
	return a.value[at+1:]
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.value)
}

// UnmarshalJSON accepts a JSON string or null. Blank strings and null
// yield the empty address.
func (a *Address) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		*a = Address{}
		return nil
	}
	parsed, err := Parse(*s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.value), nil
}

func (a *Address) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value stores the empty address as NULL.
func (a Address) Value() (driver.Value, error) {
	if a.value == "" {
		return nil, nil
	}
	return a.value, nil
}

func (a *Address) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case nil:
		*a = Address{}
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("email: cannot scan %T into Address", src)
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
