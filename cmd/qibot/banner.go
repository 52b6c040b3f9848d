package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lgtm-migrator/qibot/internal/config"
)

const logo = "\n               o|         |" +
	"\n          ,---..|---.,---.|---" +
	"\n          |   |||   ||   ||" +
	"\n          `---|``---'`---'`---'" +
	"\n              |"

var (
	primaryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
)

// banner renders the logo and version line.
func banner() string {
	var b strings.Builder
	b.WriteString(primaryStyle.Render(logo))
	b.WriteString("\n")
	b.WriteString(highlightStyle.Render("VERSION " + config.Version))
	b.WriteString("\n")
	return b.String()
}
