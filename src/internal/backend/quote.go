package backend

import (
	"fmt"
	"strings"
)

// ShellQuote wraps s in single quotes for safe embedding in a shell command
// line. Every embedded single quote becomes '\''.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// ShellUnquote parses one shell word as written on the right-hand side of a
// KEY=value assignment: single-quoted, double-quoted and bare segments are
// concatenated. Parsing stops at the first unquoted blank, so a trailing
// comment is ignored.
func ShellUnquote(s string) (string, error) {
	var sb strings.Builder
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			return sb.String(), nil
		case c == '\'':
			end := strings.IndexByte(s[i+1:], '\'')
			if end < 0 {
				return "", fmt.Errorf("unterminated single quote")
			}
			sb.WriteString(s[i+1 : i+1+end])
			i += end + 2
		case c == '"':
			i++
			closed := false
			for i < len(s) {
				d := s[i]
				if d == '"' {
					closed = true
					i++
					break
				}
				if d == '\\' && i+1 < len(s) && strings.IndexByte("\"\\$`", s[i+1]) >= 0 {
					sb.WriteByte(s[i+1])
					i += 2
					continue
				}
				sb.WriteByte(d)
				i++
			}
			if !closed {
				return "", fmt.Errorf("unterminated double quote")
			}
		case c == '\\':
			if i+1 < len(s) {
				sb.WriteByte(s[i+1])
				i += 2
			} else {
				i++
			}
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String(), nil
}
