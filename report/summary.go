package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
	sownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#228B22"))
	transitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8B4513"))
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
)

// Summary renders d as a boxed, coloured step listing for a terminal.
// With verbose false only the header and totals are shown.
func Summary(d Document, verbose bool) string {
	var b strings.Builder

	head := titleStyle.Render(fmt.Sprintf("LANE PLAN · %d×%d lanes · exit (%d,%d) %s",
		d.Grid.LanesX, d.Grid.LanesY, d.Exit.X, d.Exit.Y, exitKind(d.Exit)))
	b.WriteString(head)
	b.WriteString("\n")

	if len(d.Steps) > 0 {
		first := d.Steps[0].From
		fmt.Fprintf(&b, "start (%d,%d) · %d waypoints\n", first[0], first[1], d.Totals.Waypoints)
	}
	fmt.Fprintf(&b, "sown %d · transit %d lane units\n", d.Totals.SownLength, d.Totals.TransitLength)
	if d.Totals.AllLanes {
		b.WriteString(sownStyle.Render("✓ all lanes covered"))
	} else {
		b.WriteString(transitStyle.Render("✗ plan failed validation"))
	}

	if verbose {
		b.WriteString("\n")
		for i, s := range d.Steps {
			line := fmt.Sprintf("%3d: (%d,%d) -> (%d,%d) %s", i+1, s.From[0], s.From[1], s.To[0], s.To[1], s.Label)
			if s.Sown {
				b.WriteString("\n" + sownStyle.Render(line+" [sown]"))
			} else {
				b.WriteString("\n" + transitStyle.Render(line) + mutedStyle.Render(" [transit]"))
			}
		}
	}

	return boxStyle.Render(b.String())
}

func exitKind(e ExitInfo) string {
	if e.Corner {
		return "corner/" + e.Edge
	}

	return e.Edge
}
