// Package internal has helpers that are only useful within the loggraph runtime.
package internal

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Color variables for console output.
var (
	RecordColor = color.New(color.FgGreen)           // accepted record lines
	SkipColor   = color.New(color.FgYellow)          // skipped lines and transient errors
	EchoColor   = color.New(color.FgCyan)            // serial echo writes
	FatalColor  = color.New(color.FgRed, color.Bold) // startup-fatal conditions
)

// FatalError logs an error and exits the program.
func FatalError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "❌ %s: %v\n", FatalColor.Sprint(msg), err)
	os.Exit(1)
}

// Warning logs a warning.
func Warning(msg string) {
	fmt.Fprintf(os.Stderr, "⚠️  %s\n", SkipColor.Sprint(msg))
}

// Warningf logs a formatted warning.
func Warningf(format string, args ...any) {
	Warning(fmt.Sprintf(format, args...))
}

// Recordf logs an accepted record to stdout.
func Recordf(format string, args ...any) {
	fmt.Fprintf(os.Stdout, "%s\n", RecordColor.Sprintf(format, args...))
}

// Echof logs a serial echo write to stdout.
func Echof(format string, args ...any) {
	fmt.Fprintf(os.Stdout, "%s\n", EchoColor.Sprintf(format, args...))
}
