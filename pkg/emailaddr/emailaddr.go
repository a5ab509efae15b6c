// Package emailaddr provides syntactic email address validation and
// comma-separated list parsing. Validation is purely lexical: no DNS
// lookups, no mailbox probing.
package emailaddr

import (
	"regexp"
	"strings"
)

// addressPattern accepts local-part@domain.tld where the TLD is at least
// two alphabetic characters. Intentionally looser than RFC 5322: it matches
// the addresses people actually paste into recipient lists.
var addressPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValid reports whether addr looks like a deliverable email address.
// Surrounding whitespace is ignored.
func IsValid(addr string) bool {
	return addressPattern.MatchString(strings.TrimSpace(addr))
}

// ParseList splits a comma-separated address list and partitions the
// entries by validity. Empty entries (from trailing commas or blank input)
// are discarded. Callers are expected to surface the invalid slice to the
// operator rather than drop it silently; the valid slice is usable as-is.
func ParseList(raw string) (valid, invalid []string) {
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if IsValid(token) {
			valid = append(valid, token)
		} else {
			invalid = append(invalid, token)
		}
	}
	return valid, invalid
}
