package roster

import "strings"

// Normalize maps a raw team or performer name onto its identifier form:
// surrounding whitespace trimmed, lowercased, periods removed, and every run
// of interior whitespace replaced with a single underscore.
//
//	"  Sophia Z. " → "sophia_z"
//	"Last Festival" → "last_festival"
//
// Normalize is idempotent.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ".", "")

	return strings.Join(strings.Fields(s), "_")
}
