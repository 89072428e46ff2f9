package skills

import "strings"

// Normalize canonicalizes a skill string for comparison: lower case,
// surrounding whitespace stripped. Two skills denote the same skill iff
// their normalized forms are equal.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
