package validate

import (
	"svokit/internal/domain"
	"svokit/internal/email"
	"svokit/internal/svo"
)

// NormalizeEmail is for required fields: blank input is rejected
// instead of being treated as absent.
func NormalizeEmail(s string) (email.Address, error) {
	if svo.IsBlank(s) {
		return email.Address{}, domain.ErrInvalidEmail
	}
	return email.Parse(s)
}
