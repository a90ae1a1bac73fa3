// Package tokencount approximates token counts for metering model calls.
package tokencount

import (
	"unicode"
	"unicode/utf8"
)

// Usage holds the token counts of one request/response exchange.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total returns input plus output tokens.
func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens
}

// Count returns the approximate number of tokens in text.
// A maximal run of letters and digits is one token, every other
// non-whitespace rune is one token, and whitespace only separates.
// Invalid UTF-8 bytes count as one token each.
func Count(text string) int {
	count := 0
	inWord := false

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size

		switch {
		case r != utf8.RuneError && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if !inWord {
				count++
				inWord = true
			}
		case unicode.IsSpace(r):
			inWord = false
		default:
			count++
			inWord = false
		}
	}

	return count
}

// Measure counts both sides of an exchange.
func Measure(input, output string) Usage {
	return Usage{
		InputTokens:  Count(input),
		OutputTokens: Count(output),
	}
}
