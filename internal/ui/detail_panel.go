package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-starfield/internal/astro"
	"github.com/litescript/ls-starfield/internal/catalog"
)

const detailPanelWidth = 34

// Styles for the detail panel
var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1).
			Width(detailPanelWidth - 2)

	panelHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	panelLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Width(10)

	panelValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

// displayName returns the proper name, or a catalog designation.
func displayName(s catalog.Star) string {
	if s.HasName() {
		return s.Name
	}
	if s.ID == 0 {
		return "Sol"
	}
	return fmt.Sprintf("HIP %d", s.ID)
}

// renderDetail renders the panel for a clicked star.
func renderDetail(s catalog.Star, height int) string {
	var b strings.Builder

	name := displayName(s)
	b.WriteString(panelHeaderStyle.Render(name))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", len([]rune(name))+4))
	b.WriteString("\n\n")

	ra, dec, dist := astro.CartesianToEquatorial(s.Position)

	row := func(label, value string) {
		b.WriteString(panelLabelStyle.Render(label))
		b.WriteString(panelValueStyle.Render(value))
		b.WriteString("\n")
	}
	row("Catalog:", fmt.Sprintf("%d", s.ID))
	row("Mag:", fmt.Sprintf("%.2f", s.Mag))
	row("Distance:", fmt.Sprintf("%.2f pc", dist))
	row("", fmt.Sprintf("%.2f ly", astro.ParsecToLightYears(dist)))
	if dist > 0 {
		row("RA:", fmt.Sprintf("%.3f°", ra))
		row("Dec:", fmt.Sprintf("%+.3f°", dec))
	}
	row("XYZ:", fmt.Sprintf("%.2f %.2f %.2f", s.Position.X, s.Position.Y, s.Position.Z))

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Render("esc: close"))

	style := panelStyle
	if height > 2 {
		style = style.Height(height - 2)
	}
	return style.Render(b.String())
}
