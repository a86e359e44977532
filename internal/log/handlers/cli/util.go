package cli

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var ansiEscapes = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// EscapeAwareRuneCountInString counts the runes of str ignoring the
// ANSI escape sequences used for colors.
func EscapeAwareRuneCountInString(str string) int {
	return utf8.RuneCountInString(ansiEscapes.ReplaceAllString(str, ""))
}

// RightPad pads str with spaces up to length visible runes.
func RightPad(str string, length int) string {
	n := length - EscapeAwareRuneCountInString(str)
	if n <= 0 {
		return str
	}
	return str + strings.Repeat(" ", n)
}
