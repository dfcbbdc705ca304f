package sandbox

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/stepdeck/internal/reveal"
	"github.com/jask/stepdeck/internal/widgets"
)

var (
	dimLineStyle    = lipgloss.NewStyle().Faint(true)
	lineNumberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	consoleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
)

// Static draws the sandbox panes without executing anything.
type Static struct {
	highlighter *Highlighter
}

// NewStatic returns a static sandbox colouring code with the given chroma style.
func NewStatic(style string) *Static {
	return &Static{highlighter: NewHighlighter(style)}
}

// Render lays out the visible panes: the code pane (viewer or editor) with
// an optional preview beside it and an optional console below.
func (s *Static) Render(p Project, v View, width int) string {
	name, src := p.EntrySource()
	coloured := s.highlighter.Lines(p.Language(), src)

	var code string
	switch {
	case v.Panes.Editor:
		code = widgets.Pane{
			Title:   tabs(p, name) + " · editor",
			Content: editorLines(coloured),
			Accent:  true,
		}.Render(s.codeWidth(v, width))
	case v.Panes.Viewer:
		code = widgets.Pane{
			Title:   tabs(p, name),
			Content: viewerLines(coloured, src, v),
		}.Render(s.codeWidth(v, width))
	}

	out := code
	if v.Panes.Preview {
		widths := widgets.SplitWidths(width-1, 2, []float64{0.6, 0.4})
		preview := widgets.Pane{
			Title:   "preview",
			Content: consoleStyle.Render("preview of " + name),
			Height:  strings.Count(code, "\n") + 1,
		}.Render(widths[1])
		out = widgets.JoinColumns([]string{code, preview}, widths, 1)
	}
	// HiddenPreview only keeps the runtime alive for the console; it has no footprint.
	if v.Panes.Console {
		console := widgets.Pane{
			Title:   "console",
			Content: consoleLines(p, name),
		}.Render(width)
		if out == "" {
			out = console
		} else {
			out += "\n" + console
		}
	}
	return out
}

// tabs names the shown file first, then the project's other files.
func tabs(p Project, name string) string {
	return strings.Join(append([]string{name}, p.Others(name)...), " │ ")
}

func (s *Static) codeWidth(v View, width int) int {
	if v.Panes.Preview {
		return widgets.SplitWidths(width-1, 2, []float64{0.6, 0.4})[0]
	}
	return width
}

func viewerLines(coloured []string, src string, v View) string {
	if !v.HasDecorators {
		return strings.Join(coloured, "\n")
	}
	plain := strings.Split(src, "\n")
	lit := reveal.LineSet(v.Decorators)
	out := make([]string, len(coloured))
	for i := range coloured {
		if lit[i+1] {
			out[i] = coloured[i]
			continue
		}
		out[i] = dimLineStyle.Render(plain[i])
	}
	return strings.Join(out, "\n")
}

func editorLines(coloured []string) string {
	w := len(fmt.Sprint(len(coloured)))
	out := make([]string, len(coloured))
	for i, l := range coloured {
		out[i] = lineNumberStyle.Render(fmt.Sprintf("%*d", w, i+1)) + "  " + l
	}
	return strings.Join(out, "\n")
}

func consoleLines(p Project, name string) string {
	runner := p.Template
	if runner == "" {
		runner = "run"
	}
	return consoleStyle.Render(fmt.Sprintf("$ %s %s", runner, name)) + "\n" +
		dimLineStyle.Render("(output is produced by the live sandbox)")
}
