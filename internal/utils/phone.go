package utils

import "strings"

// FormatPhone renders an Indian mobile number as "+91 XXXXX XXXXX" when the
// digits allow it; anything else is returned as received.
func FormatPhone(phone string) string {
	if strings.TrimSpace(phone) == "" {
		return ""
	}

	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()

	switch {
	case len(d) == 10:
		return "+91 " + d[:5] + " " + d[5:]
	case len(d) == 12 && strings.HasPrefix(d, "91"):
		return "+91 " + d[2:7] + " " + d[7:]
	default:
		return phone
	}
}
