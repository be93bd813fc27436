// Package output provides styled terminal output for the hatch CLI.
//
// Functions use lipgloss for styling but hide the details from callers.
// Everything is written to a single writer (stdout by default) so commands
// and tests can redirect it.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	bannerStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(0, 2)

	mu          sync.Mutex
	out         io.Writer = os.Stdout
	verboseMode bool
)

// SetWriter redirects all output. Passing nil restores stdout.
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stdout
	}
	out = w
}

// Writer returns the writer output currently goes to.
func Writer() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return out
}

// SetVerbose enables or disables verbose output.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verboseMode = v
}

// IsVerbose reports whether verbose output is enabled.
func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verboseMode
}

func println(s string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(out, s)
}

// Success prints a success message with 🐣 emoji and green color.
//
// Example:
//
//	output.Success("Created package: my-lib")
func Success(msg string) {
	println(successStyle.Render("🐣 " + msg))
}

// Error prints an error message with ❌ emoji and red color.
func Error(msg string) {
	println(errorStyle.Render("❌ " + msg))
}

// Warn prints a warning with ⚠️ emoji and yellow color.
// Use this for failures that did not stop the run.
func Warn(msg string) {
	println(warnStyle.Render("⚠️  " + msg))
}

// Info prints an informational message in cyan.
func Info(msg string) {
	println(infoStyle.Render("ℹ️  " + msg))
}

// Step prints an indented step message in gray.
//
// Example:
//
//	output.Step("cd my-lib")
//	output.Step("npm test")
func Step(msg string) {
	println(stepStyle.Render("   " + msg))
}

// Verbose prints a debug message only if verbose mode is enabled.
func Verbose(msg string) {
	if IsVerbose() {
		println(stepStyle.Render("🔍 " + msg))
	}
}

// Banner prints a boxed greeting.
func Banner(lines ...string) {
	println(bannerStyle.Render(strings.Join(lines, "\n")))
}
