package parse

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Split tokenizes a command line into an argument vector using cmd.exe
// conventions: double quotes group, caret escapes the next character,
// %VAR% expands from the environment, and backslashes are literal except
// when they precede a quote (pairs collapse, an odd backslash escapes
// the quote).
func Split(s string) ([]string, error) {
	var tokens []string
	var arg strings.Builder
	inQuotes := false
	pending := false

	flush := func() {
		if pending || arg.Len() > 0 {
			tokens = append(tokens, arg.String())
			arg.Reset()
			pending = false
		}
	}

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, fmt.Errorf("invalid UTF-8 encoding at position %d", i)
		}

		switch {
		case r == '^' && !inQuotes:
			i += size
			if i < len(s) {
				nr, nsize := utf8.DecodeRuneInString(s[i:])
				arg.WriteRune(nr)
				i += nsize
			}
		case r == '"':
			inQuotes = !inQuotes
			pending = true
			i += size
		case r == '%' && !inQuotes:
			end := strings.IndexByte(s[i+1:], '%')
			if end < 0 {
				arg.WriteByte('%')
				i += size
				break
			}
			arg.WriteString(os.Getenv(s[i+1 : i+1+end]))
			i += end + 2
		case r == '\\':
			run := 0
			for i < len(s) && s[i] == '\\' {
				run++
				i++
			}
			if i < len(s) && s[i] == '"' {
				arg.WriteString(strings.Repeat(`\`, run/2))
				if run%2 == 0 {
					inQuotes = !inQuotes
					pending = true
				} else {
					arg.WriteByte('"')
				}
				i++
			} else {
				arg.WriteString(strings.Repeat(`\`, run))
			}
		case !inQuotes && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			flush()
			i += size
		default:
			arg.WriteRune(r)
			i += size
		}
	}
	flush()

	return tokens, nil
}
