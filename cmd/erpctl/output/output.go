package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Writer receives everything printed by this package.
var Writer io.Writer = os.Stdout

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	primaryStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(colorMuted).Width(22)
)

func Success(format string, args ...interface{}) {
	fmt.Fprint(Writer, successStyle.Render("✓ "))
	fmt.Fprintf(Writer, format+"\n", args...)
}

func Warning(format string, args ...interface{}) {
	fmt.Fprint(Writer, warningStyle.Render("⚠ "))
	fmt.Fprintf(Writer, format+"\n", args...)
}

func Error(format string, args ...interface{}) {
	fmt.Fprint(Writer, errorStyle.Render("✗ "))
	fmt.Fprintf(Writer, format+"\n", args...)
}

func Info(format string, args ...interface{}) {
	fmt.Fprint(Writer, infoStyle.Render("ℹ "))
	fmt.Fprintf(Writer, format+"\n", args...)
}

func Muted(format string, args ...interface{}) {
	fmt.Fprintln(Writer, mutedStyle.Render(fmt.Sprintf(format, args...)))
}

// Section prints a bold title followed by an underline of the same width.
func Section(title string) {
	fmt.Fprintln(Writer)
	fmt.Fprintln(Writer, primaryStyle.Render(title))
	fmt.Fprintln(Writer, mutedStyle.Render(strings.Repeat("═", lipgloss.Width(title))))
}

// Field prints an aligned "label  value" line.
func Field(label string, value interface{}) {
	fmt.Fprintf(Writer, "%s %v\n", labelStyle.Render(label), value)
}

// Bullet prints one list entry.
func Bullet(value string) {
	fmt.Fprintf(Writer, "%s %s\n", mutedStyle.Render("•"), value)
}

