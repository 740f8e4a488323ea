// Package style provides colorized terminal output helpers.
//
// Color is enabled only when stdout is a terminal, and can be switched off
// globally with SetEnabled (the --no-color flag and homer.toml both feed
// into it).
package style

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var enabled atomic.Bool

func init() {
	enabled.Store(term.IsTerminal(int(os.Stdout.Fd())))
}

// SetEnabled turns colorized output on or off for the whole process.
func SetEnabled(on bool) {
	enabled.Store(on)
}

// Enabled reports whether colorized output is active.
func Enabled() bool {
	return enabled.Load()
}

var (
	boldStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func render(s lipgloss.Style, msg string) string {
	if !enabled.Load() {
		return msg
	}
	return s.Render(msg)
}

// Bold renders msg in bold.
func Bold(msg string) string { return render(boldStyle, msg) }

// Dim renders msg faint.
func Dim(msg string) string { return render(dimStyle, msg) }

// Header renders msg in the header color.
func Header(msg string) string { return render(headerStyle, msg) }

// Info renders msg in the informational color.
func Info(msg string) string { return render(infoStyle, msg) }

// Success renders msg in the success color.
func Success(msg string) string { return render(successStyle, msg) }

// Warning renders msg in the warning color.
func Warning(msg string) string { return render(warningStyle, msg) }

// Error renders msg in the error color.
func Error(msg string) string { return render(errorStyle, msg) }

// SuccessPrefix returns the standard success label.
func SuccessPrefix() string { return Success("OK:") }

// WarningPrefix returns the standard warning label.
func WarningPrefix() string { return Warning("AVISO:") }

// ErrorPrefix returns the standard error label.
func ErrorPrefix() string { return Error("ERROR:") }

// PrintWarning writes a warning-prefixed line to stderr.
func PrintWarning(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", WarningPrefix(), fmt.Sprintf(format, args...))
}

// PrintHeader writes the section banner used before each workflow.
func PrintHeader(msg string) {
	rule := strings.Repeat("=", 60)
	fmt.Printf("\n%s\n# %s\n%s\n", rule, Bold(Header(msg)), rule)
}
