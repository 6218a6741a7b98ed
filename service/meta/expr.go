package meta

import (
	"os"
	"strings"
	"unicode"
)

// expandEnvExpr replaces all occurrences of ${env.KEY} in the input with the
// value of the environment variable KEY (or "" if unset).  Malformed
// expressions are kept literally.
func expandEnvExpr(value string) string {
	const prefix = "${env."
	if !strings.Contains(value, prefix) {
		return value
	}
	var b strings.Builder
	rest := value
	for {
		index := strings.Index(rest, prefix)
		if index < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:index])
		tail := rest[index+len(prefix):]
		end := strings.IndexByte(tail, '}')
		if end < 0 {
			// no closing brace, keep the rest literally
			b.WriteString(rest[index:])
			break
		}
		key := tail[:end]
		if !isEnvKey(key) {
			// not an env expression, emit the prefix and rescan the remainder
			b.WriteString(prefix)
			rest = tail
			continue
		}
		b.WriteString(os.Getenv(key))
		rest = tail[end+1:]
	}
	return b.String()
}

func isEnvKey(key string) bool {
	for _, r := range key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
