package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	sectionTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	sectionRule  = lipgloss.NewStyle().Faint(true)
)

// Section frames body with a "--- title ---" bar and a closing rule of the
// same width so results are easy to find in terminal output.
func Section(title, body string) string {
	bar := "--- " + title + " ---"
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(sectionTitle.Render(bar))
	b.WriteString("\n")
	b.WriteString(strings.TrimSuffix(body, "\n"))
	b.WriteString("\n")
	b.WriteString(sectionRule.Render(strings.Repeat("-", len(bar))))
	b.WriteString("\n")
	return b.String()
}
