// Package ui renders the styled terminal output of the cab command. All
// styling funnels through one enabled switch so --no-color and non-TTY
// output stay plain.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var enabled = detect()

// detect decides once at startup whether styling is appropriate: stdout
// must be a terminal that claims some color support, with NO_COLOR unset.
func detect() bool {
	if termenv.EnvNoColor() {
		return false
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// Disable turns styling off for the rest of the process. It backs the
// --no-color flag.
func Disable() {
	enabled = false
}

// Enabled reports whether output is currently styled.
func Enabled() bool {
	return enabled
}

func render(style lipgloss.Style, s string) string {
	if !enabled {
		return s
	}
	return style.Render(s)
}

// RenderPass renders success markers.
func RenderPass(s string) string { return render(passStyle, s) }

// RenderWarn renders warnings.
func RenderWarn(s string) string { return render(warnStyle, s) }

// RenderErr renders failure text.
func RenderErr(s string) string { return render(errStyle, s) }

// RenderAccent renders emphasized values such as record names.
func RenderAccent(s string) string { return render(accentStyle, s) }

// RenderMuted renders secondary detail.
func RenderMuted(s string) string { return render(mutedStyle, s) }
