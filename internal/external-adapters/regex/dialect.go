package regex

import (
	"fmt"
	"strconv"
	"strings"
)

// numberNamedGroups rewrites named groups, (?P<name>...) and (?<name>...),
// into plain capturing groups so every group is numbered left to right.
// regexp2 numbers named groups after unnamed ones and rejects the (?P form.
// (?P=name) backreferences become numbered backreferences.
func numberNamedGroups(pattern string) (string, error) {
	if !strings.Contains(pattern, "(?P") && !strings.Contains(pattern, "(?<") {
		return pattern, nil
	}

	var b strings.Builder
	names := make(map[string]int)
	groups := 0
	inClass := false

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern):
			b.WriteByte(c)
			b.WriteByte(pattern[i+1])
			i++
			continue
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
			b.WriteByte(c)
			// a ']' right after '[' or '[^' is a literal
			if i+1 < len(pattern) && pattern[i+1] == '^' {
				b.WriteByte('^')
				i++
			}
			if i+1 < len(pattern) && pattern[i+1] == ']' {
				b.WriteByte(']')
				i++
			}
			continue
		case c == '(':
			rest := pattern[i+1:]
			switch {
			case strings.HasPrefix(rest, "?P="):
				end := strings.IndexByte(rest, ')')
				if end < 0 {
					return "", fmt.Errorf("unterminated backreference at offset %d", i)
				}
				n, ok := names[rest[3:end]]
				if !ok {
					return "", fmt.Errorf("unknown group name %q", rest[3:end])
				}
				b.WriteString(`(?:\` + strconv.Itoa(n) + `)`)
				i += end + 1
				continue
			case strings.HasPrefix(rest, "?P<"),
				strings.HasPrefix(rest, "?<") && !strings.HasPrefix(rest, "?<=") && !strings.HasPrefix(rest, "?<!"):
				start := strings.IndexByte(rest, '<') + 1
				end := strings.IndexByte(rest, '>')
				if end < start {
					return "", fmt.Errorf("unterminated group name at offset %d", i)
				}
				groups++
				names[rest[start:end]] = groups
				b.WriteByte('(')
				i += end + 1
				continue
			case !strings.HasPrefix(rest, "?"):
				groups++
			}
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}
