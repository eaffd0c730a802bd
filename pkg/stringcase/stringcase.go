// Package stringcase converts identifiers between naming conventions.
package stringcase

import (
	"strings"
	"unicode"
)

// ToSnake converts a pascal, camel, dot, kebab or space separated string into snake_case.
func ToSnake(s string) string {
	var (
		rs  = []rune(s)
		out strings.Builder
	)
	out.Grow(len(s) + 4)
	lastIsSep := true
	for i, r := range rs {
		if isSeparator(r) {
			if !lastIsSep {
				out.WriteRune('_')
				lastIsSep = true
			}
			continue
		}
		if unicode.IsUpper(r) && !lastIsSep && 0 < i {
			prev := rs[i-1]
			nextIsLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextIsLower) {
				out.WriteRune('_')
			}
		}
		out.WriteRune(unicode.ToLower(r))
		lastIsSep = false
	}
	return strings.TrimSuffix(out.String(), "_")
}

func isSeparator(r rune) bool {
	switch r {
	case '_', '-', '.', ' ':
		return true
	default:
		return unicode.IsSpace(r)
	}
}
