package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/muesli/termenv"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	fgGray    = "\033[90m"
	fgGreen   = "\033[32m"
	fgYellow  = "\033[33m"
	fgBlue    = "\033[34m"
	fgRed     = "\033[31m"
	fgMagenta = "\033[35m"

	symCheck = "✔"
	symCross = "✖"
)

var (
	forceColor   bool
	disableColor bool

	// Stdout and Stderr are swapped out by tests.
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
	switch {
	case force:
		color.NoColor = false
	case disable:
		color.NoColor = true
	}
}

func colorSupported() bool {
	return termenv.NewOutput(os.Stdout).ColorProfile() != termenv.Ascii
}

// C wraps s in an ANSI color when the terminal supports it.
func C(code, s string) string {
	if disableColor || code == "" {
		return s
	}
	if forceColor || colorSupported() {
		return code + s + reset
	}
	return s
}

func OK(msg string) {
	fmt.Fprintln(Stdout, color.New(color.FgGreen).Sprint(symCheck+" "+msg))
}

func Fail(msg string) {
	fmt.Fprintln(Stderr, color.New(color.FgRed).Sprint(symCross+" "+msg))
}

// Hint prints a muted follow-up line under a failure.
func Hint(msg string) {
	fmt.Fprintln(Stderr, C(fgGray, msg))
}
