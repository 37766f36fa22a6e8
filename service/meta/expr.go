package meta

import (
	"os"
	"strings"
	"unicode"
)

const envPrefix = "${env."

// ExpandEnv replaces ${env.KEY} with the value of the KEY environment
// variable ("" when unset). ${env.KEY:-fallback} yields fallback when KEY is
// unset or empty. Malformed expressions are kept as literal text; scanning
// resumes right after the literal prefix so nested expressions still expand.
func ExpandEnv(value string) string {
	return expand(value, os.LookupEnv)
}

func expand(value string, lookup func(string) (string, bool)) string {
	if !strings.Contains(value, envPrefix) {
		return value
	}
	var b strings.Builder
	for {
		idx := strings.Index(value, envPrefix)
		if idx < 0 {
			b.WriteString(value)
			return b.String()
		}
		b.WriteString(value[:idx])
		rest := value[idx+len(envPrefix):]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			b.WriteString(value[idx:])
			return b.String()
		}
		key, fallback, hasFallback := strings.Cut(rest[:end], ":-")
		if !isEnvKey(key) {
			b.WriteString(envPrefix)
			value = rest
			continue
		}
		resolved, _ := lookup(key)
		if resolved == "" && hasFallback {
			resolved = fallback
		}
		b.WriteString(resolved)
		value = rest[end+1:]
	}
}

// isEnvKey accepts letters, digits and '_' (an empty key is allowed)
func isEnvKey(key string) bool {
	for _, r := range key {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return false
		}
	}
	return true
}
