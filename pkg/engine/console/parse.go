package console

import (
	"errors"
	"unicode"
)

// ErrUnterminatedQuote is returned by Parse when a double-quoted argument
// is never closed.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// Parse splits a command line into a verb and its arguments.
// Tokens are separated by whitespace; a double-quoted segment is kept as a
// single argument with its internal whitespace preserved. No other escape
// sequences are interpreted. The caller is expected to have rejected
// empty (all-whitespace) input already.
func Parse(line string) (verb string, args []string, err error) {
	var tokens []string
	var current []rune
	inToken := false
	inQuote := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			inToken = true
		case unicode.IsSpace(r) && !inQuote:
			if inToken {
				tokens = append(tokens, string(current))
				current = current[:0]
				inToken = false
			}
		default:
			current = append(current, r)
			inToken = true
		}
	}
	if inQuote {
		return "", nil, ErrUnterminatedQuote
	}
	if inToken {
		tokens = append(tokens, string(current))
	}
	if len(tokens) == 0 {
		return "", nil, nil
	}
	return tokens[0], tokens[1:], nil
}
