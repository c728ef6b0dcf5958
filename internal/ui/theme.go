package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ElevateAI CLI theme. Kept intentionally small: reusable styles and a few
// emojis.

const (
	IconSpark  = "✨"
	IconFlame  = "🔥"
	IconTarget = "🎯"
	IconDone   = "✅"
	IconTask   = "📌"
	IconError  = "🧨"
	IconFeed   = "📡"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")
	cBad     = lipgloss.Color("196")
	cMuted   = lipgloss.Color("245")

	H1    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	Key   = lipgloss.NewStyle().Bold(true)
	Good  = lipgloss.NewStyle().Foreground(cGood)
	Bad   = lipgloss.NewStyle().Foreground(cBad)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
)

// Heading renders an icon + title line.
func Heading(icon, title string) string {
	return H1.Render(icon + " " + title)
}

// LabelValue renders a "Label: value" line with a bold label.
func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}
