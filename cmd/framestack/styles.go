package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette
	primaryColor   = lipgloss.Color("#7D56F4")
	secondaryColor = lipgloss.Color("#00D7FF")
	errorColor     = lipgloss.Color("#FF4B4B")
	mutedColor     = lipgloss.Color("#666666")

	frameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	slotStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	summaryStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Italic(true)

	staleStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)

// styleDump colors a stack listing line by line: frame headers, slot
// numbers and the trailing summary.
func styleDump(listing string) string {
	lines := strings.Split(strings.TrimSuffix(listing, "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "frame "):
			lines[i] = frameStyle.Render(line)
		case strings.HasPrefix(line, "  ["):
			if end := strings.IndexByte(line, ']'); end > 0 {
				lines[i] = "  " + slotStyle.Render(line[2:end+1]) + line[end+1:]
			}
		default:
			lines[i] = summaryStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

func (p *printer) stale(s string) string {
	if p.color {
		return staleStyle.Render(s)
	}
	return s
}
