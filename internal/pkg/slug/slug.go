// Package slug derives URL-safe identifiers from human-readable names.
package slug

import "strings"

// Make lowercases the name, collapses every run of non-alphanumeric
// characters into a single hyphen and strips leading/trailing hyphens.
// Deterministic and idempotent: Make(Make(x)) == Make(x).
func Make(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
