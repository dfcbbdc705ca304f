// Package widgets holds the low-level terminal drawing primitives shared by
// the sandbox panes and the deck screens.
package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane is a rounded box with the title set into the top border.
type Pane struct {
	Title   string
	Content string
	Height  int // 0 fits the content
	Accent  bool

	BorderColor lipgloss.Color
	AccentColor lipgloss.Color
}

var (
	defaultPaneBorder = lipgloss.Color("#585b70")
	defaultPaneAccent = lipgloss.Color("#a6e3a1")
)

// Render draws the pane at width. Content lines are truncated, never wrapped.
func (p Pane) Render(width int) string {
	if width < 4 {
		width = 4
	}
	contentLines := strings.Split(p.Content, "\n")
	h := p.Height
	if h <= 0 {
		h = len(contentLines) + 2
	}
	if h < 3 {
		h = 3
	}

	border := p.BorderColor
	if border == "" {
		border = defaultPaneBorder
	}
	if p.Accent {
		border = p.AccentColor
		if border == "" {
			border = defaultPaneAccent
		}
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(border).Bold(true)

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	titleText := ""
	if t := strings.TrimSpace(p.Title); t != "" {
		titleText = " " + ansi.Truncate(t, max(1, innerWidth-3), "") + " "
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	leftDash := min(1, dashes)
	if titleText == "" {
		leftDash = 0
	}
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	rows := make([]string, 0, h)
	rows = append(rows, borderStyle.Render("╭"+strings.Repeat("─", leftDash))+
		titleStyle.Render(titleText)+
		borderStyle.Render(strings.Repeat("─", rightDash)+"╮"))
	for i := 0; i < h-2; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows, v+" "+PadRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}

// PadRight truncates or pads s to exactly width cells.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
