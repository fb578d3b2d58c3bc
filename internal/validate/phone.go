package validate

import (
	"strings"

	"github.com/nyaruka/phonenumbers"

	"svokit/internal/domain"
	"svokit/internal/svo"
)

const DefaultRegion = "US"

// NormalizePhone formats an optional phone number as E.164.
// Blank input yields "" and no error. Numbers without a country code
// are read in region.
func NormalizePhone(s, region string) (string, error) {
	if svo.IsBlank(s) {
		return "", nil
	}
	if region == "" {
		region = DefaultRegion
	}

	num, err := phonenumbers.Parse(strings.TrimSpace(s), strings.ToUpper(region))
	if err != nil {
		return "", domain.ErrInvalidPhone
	}

	if !phonenumbers.IsValidNumber(num) {
		return "", domain.ErrInvalidPhone
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}
