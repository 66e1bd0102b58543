package utils

import (
	"regexp"
	"strings"
)

var indianMobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// NormalizeIndianMobile strips separators and the +91, 91 or 0 prefix from a
// phone number. The result is only meaningful when ValidIndianMobile holds.
func NormalizeIndianMobile(phone string) string {
	stripped := strings.NewReplacer("-", "", " ", "", "+", "", "(", "", ")", "", ".", "").Replace(phone)

	switch {
	case len(stripped) == 12 && strings.HasPrefix(stripped, "91"):
		stripped = stripped[2:]
	case len(stripped) == 11 && strings.HasPrefix(stripped, "0"):
		stripped = stripped[1:]
	}
	return stripped
}

// ValidIndianMobile reports whether phone is a 10-digit Indian mobile number
// once normalized
func ValidIndianMobile(phone string) bool {
	return indianMobilePattern.MatchString(NormalizeIndianMobile(phone))
}
