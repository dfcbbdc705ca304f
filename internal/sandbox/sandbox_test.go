package sandbox

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/stepdeck/internal/reveal"
)

const src = "const a = 1\nconst b = 2\nconsole.log(a + b)"

func project() Project {
	return Project{Files: map[string]string{"index.js": src}, Entry: "index.js", Template: "node"}
}

func TestEntrySourceFallsBackToFirstFile(t *testing.T) {
	t.Parallel()

	p := Project{Files: map[string]string{"b.go": "B", "a.go": "A"}, Entry: "missing.go"}
	name, body := p.EntrySource()
	require.Equal(t, "a.go", name)
	require.Equal(t, "A", body)

	name, body = Project{}.EntrySource()
	require.Empty(t, name)
	require.Empty(t, body)

	require.Equal(t, "js", project().Language())
}

func TestHighlighterKeepsLineCount(t *testing.T) {
	t.Parallel()

	h := NewHighlighter("no-such-style")
	got := h.Lines("js", src)
	require.Len(t, got, 3)
	for i, l := range strings.Split(src, "\n") {
		require.Equal(t, l, ansi.Strip(got[i]))
	}
}

func TestStaticViewerShowsAllLines(t *testing.T) {
	t.Parallel()

	ds, ok := reveal.DeriveDecorators(0, []reveal.LineRange{{2, 2}})
	require.True(t, ok)
	out := ansi.Strip(NewStatic("monokai").Render(project(), View{
		Mode:          Viewer,
		Decorators:    ds,
		HasDecorators: true,
		Panes:         reveal.Panes{Viewer: true},
	}, 40))

	require.Contains(t, out, "index.js")
	require.Contains(t, out, "const a = 1")
	require.Contains(t, out, "console.log(a + b)")
	require.NotContains(t, out, "editor")
	require.NotContains(t, out, "$ node")
}

func TestStaticEditorWithConsoleAndPreview(t *testing.T) {
	t.Parallel()

	out := ansi.Strip(NewStatic("").Render(project(), View{
		Mode:  Editor,
		Panes: reveal.Panes{Editor: true, Console: true, Preview: true},
	}, 60))

	require.Contains(t, out, "index.js · editor")
	require.Contains(t, out, "preview")
	require.Contains(t, out, "$ node index.js")
	require.Contains(t, out, "1  const a = 1")
	for _, l := range strings.Split(out, "\n") {
		require.LessOrEqual(t, ansi.StringWidth(l), 60)
	}
}

func TestStaticNamesEveryProjectFile(t *testing.T) {
	t.Parallel()

	p := project()
	p.Files["util.js"] = "export const x = 1"
	p.Files["style.css"] = "body {}"
	require.Equal(t, []string{"style.css", "util.js"}, p.Others("index.js"))

	out := ansi.Strip(NewStatic("").Render(p, View{Mode: Viewer, Panes: reveal.Panes{Viewer: true}}, 60))
	require.Contains(t, out, "index.js │ style.css │ util.js")
	require.Contains(t, out, "const a = 1")
	require.NotContains(t, out, "export const x")
}
