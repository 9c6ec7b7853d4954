// Package logger provides leveled, colorized console output for the CLI.
package logger

import (
	"github.com/fatih/color"
)

// Level printers behave like fmt.Printf with the text colored per level.

// Info logs informational messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warnings in bright magenta.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs errors in red.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs diagnostic messages in cyan when enabled via Init, and is a
// no-op otherwise.
var Debug func(format string, a ...any) = func(format string, a ...any) {}

// Init enables or disables debug output. Called once by the root command
// after flag parsing.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
