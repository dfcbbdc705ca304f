package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/stepdeck/internal/content"
	"github.com/jask/stepdeck/internal/reveal"
	"github.com/jask/stepdeck/internal/sandbox"
	"github.com/jask/stepdeck/internal/steps"
)

func renderNothing(*Context, content.Node) string { return "" }

func renderText(_ *Context, n content.Node) string { return n.Text }

func renderGeneric(c *Context, n content.Node) string {
	if len(n.Children) == 0 {
		return n.Text
	}
	return c.Inline(n)
}

func renderHeading(c *Context, n content.Node) string {
	level := n.Level
	if level < 1 || level > 6 {
		level = 6
	}
	text := c.Inline(n)
	if level == 1 {
		text = strings.ToUpper(text)
	}
	return c.styles().headings[level].Render(text)
}

func renderParagraph(c *Context, n content.Node) string {
	return c.styles().paragraph.Width(c.Width).Render(c.Inline(n))
}

func renderEmphasis(c *Context, n content.Node) string {
	return c.styles().emphasis.Render(c.Inline(n))
}

func renderStrong(c *Context, n content.Node) string {
	return c.styles().strong.Render(c.Inline(n))
}

func renderInlineCode(c *Context, n content.Node) string {
	return c.styles().code.Render(n.Text)
}

func renderLink(c *Context, n content.Node) string {
	text := c.Inline(n)
	href := n.Prop("href")
	if href == "" {
		return c.styles().link.Render(text)
	}
	return ansi.SetHyperlink(href) + c.styles().link.Render(text) + ansi.ResetHyperlink()
}

// renderList reveals its items one step each. Every item claims its own
// block just before its children render, so blocks nested in an item are
// numbered after the item and before its next sibling.
func renderList(c *Context, n content.Node) string {
	opts := c.options()
	key := c.Key()
	items := make([]string, len(n.Children))
	starts := make([]int, len(n.Children))
	var first steps.State
	// items are always rendered so nested step-bound components keep their
	// mount order even while hidden
	for i, child := range n.Children {
		c.path = append(c.path, i)
		st := c.UseSteps(1)
		items[i] = c.Render(child)
		c.path = c.path[:len(c.path)-1]
		starts[i] = st.Handle.Block().Start
		if i == 0 {
			first = st
		}
	}
	if len(items) == 0 {
		return ""
	}

	current := c.frame.reg.Step()
	offset := reveal.ItemOffset(starts, current, c.spanEnd(key))
	ordered := n.Prop("ordered") == "true"
	lines := make([]string, 0, len(items))
	for i, item := range items {
		state := reveal.ItemState(opts.ListMode, first.Active, offset, i)
		p := reveal.Present(opts.Transition, state)
		if !p.Visible {
			continue
		}
		marker := "•"
		if ordered {
			marker = fmt.Sprintf("%d.", i+1)
		}
		for range p.PadTop {
			lines = append(lines, "")
		}
		lines = append(lines, indentItem(c.styles().bullet.Render(marker), item, p.Indent))
	}
	if len(lines) == 0 {
		return first.Placeholder.String()
	}
	return strings.Join(lines, "\n")
}

func indentItem(marker, body string, indent int) string {
	pad := strings.Repeat(" ", indent)
	hang := strings.Repeat(" ", indent+ansi.StringWidth(marker)+1)
	rows := strings.Split(body, "\n")
	for i, r := range rows {
		if i == 0 {
			rows[i] = pad + marker + " " + r
			continue
		}
		rows[i] = hang + r
	}
	return strings.Join(rows, "\n")
}

func renderListItem(c *Context, n content.Node) string {
	parts := c.Children(n)
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}

// renderBlockquote appears as a whole on its step.
func renderBlockquote(c *Context, n content.Node) string {
	st := c.UseSteps(1)
	body := strings.Join(nonEmpty(c.Children(n)), "\n")
	p := reveal.Present(c.options().Transition, stateFor(st.Active))
	if !p.Visible {
		return st.Placeholder.String()
	}
	s := c.styles()
	bar := s.quoteBar.Render("▌")
	width := max(1, c.Width-2-p.Indent)
	rows := strings.Split(s.quote.Width(width).Render(ansi.Strip(body)), "\n")
	pad := strings.Repeat(" ", p.Indent)
	for i, r := range rows {
		rows[i] = pad + bar + " " + r
	}
	return strings.Repeat("\n", p.PadTop) + strings.Join(rows, "\n")
}

func stateFor(active bool) reveal.TransitionState {
	if active {
		return reveal.Active
	}
	return reveal.Initial
}

func nonEmpty(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// renderCodeBlock walks the highlight ranges one step each and ends in the
// interactive step that opens the editor and the preview.
func renderCodeBlock(c *Context, n content.Node) string {
	ranges, err := reveal.ParseRanges(n.Prop("highlight"))
	if err != nil {
		c.Fail(fmt.Errorf("code block %s: %w", c.Key(), err))
		ranges = nil
	}
	st := c.UseSteps(reveal.CodeSteps(ranges))

	opts := reveal.PaneOptions{
		Editor:   n.Prop("editor") == "true",
		Terminal: n.Prop("terminal") == "true",
		Preview:  n.Prop("preview") == "true",
	}
	view := sandbox.View{}
	if st.Active {
		state := reveal.CodeStateAt(st.Offset, ranges)
		view.Panes = reveal.PanesAt(state, opts)
		if ds, ok := reveal.DeriveDecorators(st.Offset, ranges); ok && !opts.Editor {
			view.Decorators, view.HasDecorators = ds, true
		}
	} else {
		view.Panes = reveal.PanesAt(reveal.CodeState{Phase: reveal.Highlighting}, opts)
	}
	if view.Panes.Editor {
		view.Mode = sandbox.Editor
	}
	return st.Placeholder.String() + c.options().Sandbox.Render(codeProject(n), view, c.Width)
}

// codeProject builds the sandbox project of a code block: the block itself is
// the entry, attached fences add the other files. The first file to claim a
// name keeps it.
func codeProject(n content.Node) sandbox.Project {
	entry := fileName(n, "index")
	files := map[string]string{entry: n.Text}
	for i, f := range n.Children {
		if f.Kind != content.KindCodeBlock {
			continue
		}
		name := fileName(f, fmt.Sprintf("file%d", i+1))
		if _, taken := files[name]; taken {
			continue
		}
		files[name] = f.Text
	}
	return sandbox.Project{
		Files:    files,
		Entry:    entry,
		Template: n.Prop("template"),
	}
}

func fileName(n content.Node, base string) string {
	if name := n.Prop("file"); name != "" {
		return name
	}
	if lang := n.Prop("lang"); lang != "" {
		return base + "." + lang
	}
	return base
}
