package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func kinds(nodes []Node) []Kind {
	out := make([]Kind, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Kind)
	}
	return out
}

func TestSegmentConcreteExample(t *testing.T) {
	t.Parallel()

	nodes := []Node{
		Heading(1, Text("Title")),
		Elem(KindParagraph, Text("intro")),
		Separator(),
		Elem(KindList, Elem(KindListItem, Text("a")), Elem(KindListItem, Text("b"))),
		Separator(),
	}
	slides := Segment(nodes)
	require.Len(t, slides, 3)
	require.Equal(t, []Kind{KindHeading, KindParagraph}, kinds(slides[0].Nodes))
	require.Equal(t, []Kind{KindList}, kinds(slides[1].Nodes))
	require.Len(t, slides[1].Nodes[0].Children, 2)
	require.Empty(t, slides[2].Nodes)
	for i, s := range slides {
		require.Equal(t, i, s.Index)
	}
}

func TestSegmentCountMatchesSeparators(t *testing.T) {
	t.Parallel()

	cases := map[string][]Node{
		"empty":          nil,
		"leading":        {Separator(), Text("a")},
		"trailing":       {Text("a"), Separator()},
		"adjacent":       {Text("a"), Separator(), Separator(), Text("b")},
		"only separator": {Separator(), Separator(), Separator()},
	}
	for name, nodes := range cases {
		t.Run(name, func(t *testing.T) {
			seps := 0
			for _, n := range nodes {
				if n.Kind == KindSeparator {
					seps++
				}
			}
			slides := Segment(nodes)
			require.Len(t, slides, seps+1)
			for _, s := range slides {
				for _, n := range s.Nodes {
					require.NotEqual(t, KindSeparator, n.Kind)
				}
			}
		})
	}
}

func TestSegmentAllSeparatorsYieldsEmptySlides(t *testing.T) {
	t.Parallel()

	slides := Segment([]Node{Separator(), Separator()})
	require.Len(t, slides, 3)
	for _, s := range slides {
		require.True(t, s.Empty())
	}
}

func TestSegmentWithoutSeparatorsKeepsOrder(t *testing.T) {
	t.Parallel()

	nodes := []Node{Heading(2, Text("x")), Elem(KindParagraph, Text("y")), Elem(KindBlockquote, Text("z"))}
	slides := Segment(nodes)
	require.Len(t, slides, 1)
	require.Equal(t, nodes, slides[0].Nodes)
}

func TestSlideTitle(t *testing.T) {
	t.Parallel()

	s := Slide{Nodes: []Node{
		Elem(KindParagraph, Text("lead")),
		Heading(2, Text("Why "), Elem(KindStrong, Text("zod"))),
	}}
	require.Equal(t, "Why zod", s.Title())
	require.Equal(t, "", Slide{}.Title())
}
