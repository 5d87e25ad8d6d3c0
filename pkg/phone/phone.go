package phone

import (
	"errors"
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

var (
	ErrUnparsable = errors.New("phone number could not be parsed")
	ErrInvalid    = errors.New("phone number is not valid")
)

// DefaultRegion is assumed when a number carries no country prefix.
const DefaultRegion = "EG"

// Normalize parses a phone number and returns it in E.164 format
// (e.g. "+201012345678"). Numbers without a country prefix are treated
// as local to DefaultRegion.
func Normalize(raw string) (string, error) {
	num, err := phonenumbers.Parse(raw, DefaultRegion)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnparsable, err)
	}

	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalid
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// IsMobile reports whether the number is a mobile line. Delivery codes are
// sent over SMS, so landlines cannot receive them.
func IsMobile(raw string) bool {
	num, err := phonenumbers.Parse(raw, DefaultRegion)
	if err != nil {
		return false
	}

	t := phonenumbers.GetNumberType(num)
	return t == phonenumbers.MOBILE || t == phonenumbers.FIXED_LINE_OR_MOBILE
}
