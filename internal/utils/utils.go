// Package utils contains helpers for rendering text on the console.
package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"

	wordwrap "github.com/mitchellh/go-wordwrap"
)

// Finds the ansi escape sequences (like colors)
// Taken from: https://github.com/chalk/ansi-regex/blob/d9d806ecb45d899cf43408906a4440060c5c50e5/index.js
var ansiEscapes = regexp.MustCompile(`[\x1B\x9B][[\]()#;?]*` +
	`(?:(?:(?:[a-zA-Z\d]*(?:;[a-zA-Z\\d]*)*)?\x07)` +
	`|(?:(?:\d{1,4}(?:;\d{0,4})*)?[\dA-PRZcf-ntqry=><~]))`)

// EscapeAwareRuneCountInString counts the number of runes in a
// string taking into account escape sequences.
func EscapeAwareRuneCountInString(s string) int {
	n := utf8.RuneCountInString(s)
	for _, sm := range ansiEscapes.FindAllString(s, -1) {
		n -= utf8.RuneCountInString(sm)
	}
	return n
}

// RightPad pads str with spaces until it is length runes long, not
// counting escape sequences. Longer strings are returned unchanged.
func RightPad(str string, length int) string {
	c := length - EscapeAwareRuneCountInString(str)
	if c < 0 {
		c = 0
	}
	return str + strings.Repeat(" ", c)
}

// WrapLines wraps s at lim characters and returns the resulting lines.
func WrapLines(s string, lim uint) []string {
	return strings.Split(wordwrap.WrapString(s, lim), "\n")
}

// MaxWidth returns the width of the widest line.
func MaxWidth(lines ...string) int {
	var width int
	for _, line := range lines {
		if n := EscapeAwareRuneCountInString(line); n > width {
			width = n
		}
	}
	return width
}
