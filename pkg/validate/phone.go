package validate

import "regexp"

var phoneRe = regexp.MustCompile(`^\+?[1-9][0-9]{6,14}$`)

// IsPhone reports whether s looks like an E.164 phone number.
func IsPhone(s string) bool {
	return phoneRe.MatchString(s)
}
