package tui

import (
	"strings"
)

// Panel renders body inside a rounded bordered box with a title line,
// replacing the boxed summaries the tool prints after successful commands.
func Panel(title, body string) string {
	heading := TitleStyle.Render(title)
	return PanelStyle.Render(heading + "\n\n" + body)
}

// Rule renders a horizontal section divider with an optional centered label.
func Rule(label string) string {
	const width = 60

	if label == "" {
		return RuleStyle.Render(strings.Repeat("─", width))
	}

	side := (width - len(label) - 2) / 2
	if side < 2 {
		side = 2
	}

	line := strings.Repeat("─", side)
	return RuleStyle.Render(line + " " + label + " " + line)
}
