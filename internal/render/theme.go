package render

import "github.com/charmbracelet/lipgloss"

// Theme is the colour set used by the stock renderers.
type Theme struct {
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Quote  lipgloss.Color
	Link   lipgloss.Color
	CodeBg lipgloss.Color
}

// DefaultTheme is a dark palette with the green accents of the original decks.
func DefaultTheme() Theme {
	return Theme{
		Text:   "#cdd6f4",
		Muted:  "#a6adc8",
		Accent: "#89b4fa",
		Quote:  "#77e955",
		Link:   "#a6e3a1",
		CodeBg: "#313244",
	}
}

type styles struct {
	headings  [7]lipgloss.Style
	paragraph lipgloss.Style
	bullet    lipgloss.Style
	quote     lipgloss.Style
	quoteBar  lipgloss.Style
	link      lipgloss.Style
	code      lipgloss.Style
	emphasis  lipgloss.Style
	strong    lipgloss.Style
}

func newStyles(t Theme) styles {
	s := styles{
		paragraph: lipgloss.NewStyle().Foreground(t.Text),
		bullet:    lipgloss.NewStyle().Foreground(t.Link),
		quote:     lipgloss.NewStyle().Foreground(t.Quote),
		quoteBar:  lipgloss.NewStyle().Foreground(t.Quote).Bold(true),
		link:      lipgloss.NewStyle().Foreground(t.Link).Underline(true),
		code:      lipgloss.NewStyle().Foreground(t.Text).Background(t.CodeBg),
		emphasis:  lipgloss.NewStyle().Italic(true),
		strong:    lipgloss.NewStyle().Bold(true),
	}
	s.headings[1] = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	s.headings[2] = lipgloss.NewStyle().Foreground(t.Text).Bold(true).Underline(true)
	for l := 3; l <= 6; l++ {
		s.headings[l] = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	}
	s.headings[0] = s.headings[6]
	return s
}
