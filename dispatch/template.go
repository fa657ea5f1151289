package dispatch

import "strings"

// Resolve expands {key} placeholders in a command template using the given
// substitutions. A token whose placeholders all resolve to the empty string is
// dropped, and when it directly follows a flag token (leading "-") the flag is
// dropped with it, so optional parameters like an aligner choice simply vanish
// from the argument list. A placeholder with no configured substitution
// resolves empty; that is what makes template parameters optional per
// sub-test.
func Resolve(template []string, subs map[string]string) []string {
	args := make([]string, 0, len(template))

	for _, tok := range template {
		expanded, hadPlaceholder := expand(tok, subs)
		if hadPlaceholder && expanded == "" {
			// Drop the preceding flag along with its empty value.
			if n := len(args); n > 0 && strings.HasPrefix(args[n-1], "-") {
				args = args[:n-1]
			}
			continue
		}
		args = append(args, expanded)
	}

	return args
}

func expand(tok string, subs map[string]string) (string, bool) {
	var out strings.Builder
	had := false
	rest := tok

	for {
		open := strings.Index(rest, "{")
		if open < 0 {
			out.WriteString(rest)
			break
		}
		close := strings.Index(rest[open:], "}")
		if close < 0 {
			out.WriteString(rest)
			break
		}

		had = true
		key := rest[open+1 : open+close]
		out.WriteString(rest[:open])
		out.WriteString(subs[key])
		rest = rest[open+close+1:]
	}

	return out.String(), had
}
