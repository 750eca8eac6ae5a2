package shell

import (
	"fmt"
	"strings"
	"unicode"
)

// Split breaks a command line into words.
//
// Words are separated by white space. Single quotes keep everything up to the
// closing quote literally; double quotes do the same but honour backslash
// escapes. Outside single quotes a backslash escapes the next rune.
func Split(line string) ([]string, error) {
	var (
		words   []string
		cur     strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)

	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
			inWord = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case unicode.IsSpace(r):
			if inWord {
				words = append(words, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("%w: unterminated %c quote", ErrUsage, quote)
	}
	if escaped {
		return nil, fmt.Errorf("%w: trailing backslash", ErrUsage)
	}
	if inWord {
		words = append(words, cur.String())
	}
	return words, nil
}
