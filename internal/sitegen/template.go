// Package sitegen assembles the static marketing site from HTML partials.
package sitegen

import "strings"

// Render replaces every occurrence of each {{NAME}} marker in template with
// its mapped value. Substitution is literal, single-pass text replacement:
// markers appearing inside replacement values are never expanded again, and
// markers with no mapping are left verbatim. No HTML escaping is performed;
// callers must pre-sanitize untrusted values.
func Render(template string, values map[string]string) string {
	var out strings.Builder
	out.Grow(len(template))

	rest := template
	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			out.WriteString(rest)
			return out.String()
		}
		close := strings.Index(rest[open+2:], "}}")
		if close < 0 {
			out.WriteString(rest)
			return out.String()
		}

		name := rest[open+2 : open+2+close]
		value, ok := values[name]
		if ok {
			out.WriteString(rest[:open])
			out.WriteString(value)
		} else {
			// Unknown marker stays in the output untouched.
			out.WriteString(rest[:open+2+close+2])
		}
		rest = rest[open+2+close+2:]
	}
}
