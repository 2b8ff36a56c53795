package valueobject

import (
	"regexp"
	"strings"

	"github.com/storefront/backend/internal/domain/shared"
)

// indianMobilePattern matches a 10-digit Indian mobile number, optionally
// prefixed with the "91" country code. The subscriber number must start
// with a digit 6-9.
var indianMobilePattern = regexp.MustCompile(`^(91)?[6-9]\d{9}$`)

var nonDigits = regexp.MustCompile(`\D`)

// Phone is a normalized Indian mobile number carrying the 91 country code
type Phone struct {
	value string
}

// NewPhone validates and normalizes a raw phone string. All non-digit
// characters are stripped before validation; the result always carries
// the 91 prefix.
func NewPhone(raw string) (Phone, error) {
	digits := nonDigits.ReplaceAllString(raw, "")
	if !indianMobilePattern.MatchString(digits) {
		return Phone{}, shared.NewDomainError("INVALID_PHONE",
			"Please enter a valid Indian phone number starting with 6-9 and having 10 digits")
	}
	if !strings.HasPrefix(digits, "91") {
		digits = "91" + digits
	}
	return Phone{value: digits}, nil
}

// String returns the normalized number, e.g. "919876543210"
func (p Phone) String() string {
	return p.value
}

// IsZero returns true if the phone has not been set
func (p Phone) IsZero() bool {
	return p.value == ""
}

// Subscriber returns the 10-digit subscriber number without the country code
func (p Phone) Subscriber() string {
	return strings.TrimPrefix(p.value, "91")
}
