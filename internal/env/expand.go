// Package env expands ${env.NAME} references in configuration text.
package env

import (
	"os"
	"strings"
	"unicode"
)

const prefix = "${env."

// Expand replaces every ${env.NAME} with the value of the NAME environment
// variable; unset variables expand to an empty string. Malformed references
// are kept verbatim.
func Expand(text string) string {
	var b strings.Builder
	for {
		idx := strings.Index(text, prefix)
		if idx < 0 {
			b.WriteString(text)
			return b.String()
		}
		b.WriteString(text[:idx])
		rest := text[idx+len(prefix):]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			b.WriteString(text[idx:])
			return b.String()
		}
		name := rest[:end]
		if !isName(name) {
			b.WriteString(prefix)
			text = rest
			continue
		}
		b.WriteString(os.Getenv(name))
		text = rest[end+1:]
	}
}

func isName(name string) bool {
	for _, r := range name {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return false
		}
	}
	return true
}
