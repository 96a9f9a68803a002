package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	escapeBytes [256]byte

	quoter = strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\t", `\t`,
		"\n", `\n`,
		"\r", `\r`,
	)
)

func init() {
	escapeBytes['n'] = '\n'  // newline
	escapeBytes['r'] = '\r'  // carriage return
	escapeBytes['t'] = '\t'  // horizontal tab
	escapeBytes['\\'] = '\\' // backslash
	escapeBytes['"'] = '"'   // double quote
	escapeBytes['\''] = '\'' // single quote
}

// Quote wraps s in double quotes. Backslashes, double quotes, tabs, line
// feeds and carriage returns are escaped, every other byte is kept as is.
func Quote(s string) string {
	return `"` + quoter.Replace(s) + `"`
}

// Unquote decodes a double-quoted string literal, as produced by Quote or
// written in source. Besides the escapes Quote produces, \' and the
// numeric escapes \xHH and \uXXXX are understood.
func Unquote(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", fmt.Errorf("string literal must be enclosed in double quotes")
	}
	return unescape(s[1 : len(s)-1])
}

func unescape(s string) (string, error) {
	if strings.IndexByte(s, '\\') < 0 {
		return s, nil
	}

	unescaped := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		next := s[i]
		if next != '\\' {
			unescaped = append(unescaped, next)
			continue
		}

		i++
		if i >= len(s) {
			return "", fmt.Errorf("unfinished escape at end of string")
		}

		switch s[i] {
		case 'x':
			code, err := decodeHex(s, i+1, 2)
			if err != nil {
				return "", err
			}
			unescaped = append(unescaped, byte(code))
			i += 2
		case 'u':
			code, err := decodeHex(s, i+1, 4)
			if err != nil {
				return "", err
			}
			unescaped = utf8.AppendRune(unescaped, rune(code))
			i += 4
		default:
			b := escapeBytes[s[i]]
			if b == 0 {
				return "", fmt.Errorf("unknown escape sequence '\\%s'", string(s[i]))
			}
			unescaped = append(unescaped, b)
		}
	}

	return string(unescaped), nil
}

func decodeHex(s string, from, n int) (uint64, error) {
	if from+n > len(s) {
		return 0, fmt.Errorf("incomplete hex escape at end of string")
	}
	code, err := strconv.ParseUint(s[from:from+n], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("decode hex: %w", err)
	}
	return code, nil
}
