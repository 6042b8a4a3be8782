package errors

import (
	"fmt"
	"strings"
)

const (
	ansiReset = "\033[0m"
	ansiRed   = "\033[1;31m"
	ansiCyan  = "\033[36m"
)

var useColor = true

// DisableColors turns off ANSI colors in Format output.
func DisableColors() { useColor = false }

// EnableColors turns ANSI colors back on.
func EnableColors() { useColor = true }

func paint(ansi, s string) string {
	if !useColor {
		return s
	}
	return ansi + s + ansiReset
}

// Format renders the error for a terminal: a headline, the wrapped detail,
// the cause and a hint, each on its own lines.
func (e *GateError) Format() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s%s\n", paint(ansiRed, "ERROR "), e.headline())
	for _, line := range wrapText(e.Detail, 70) {
		fmt.Fprintf(&b, "  %s\n", line)
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, "  cause: %v\n", e.Wrapped)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "  %s%s\n", paint(ansiCyan, "Hint: "), e.Suggestion)
	}
	return b.String()
}

func (e *GateError) headline() string {
	if e.Code == "" {
		return e.Message
	}
	return e.Code + ": " + e.Message
}

// wrapText breaks text into lines of at most width bytes, splitting only
// at spaces. A single word longer than width gets a line of its own.
func wrapText(text string, width int) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) > width:
			lines = append(lines, line)
			line = word
		default:
			line += " " + word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
