package content

import "strings"

// Slide is the run of nodes between two separators.
type Slide struct {
	Index int
	Nodes []Node
}

// Title returns the text of the first heading on the slide, if any.
func (s Slide) Title() string {
	for _, n := range s.Nodes {
		if n.Kind == KindHeading {
			return strings.TrimSpace(n.PlainText())
		}
	}
	return ""
}

// Empty reports whether the slide has no content.
func (s Slide) Empty() bool { return len(s.Nodes) == 0 }

// Segment splits nodes into slides at every separator. Separators are
// dropped, empty slides are kept and the result always has
// count(separators)+1 entries.
func Segment(nodes []Node) []Slide {
	slides := make([]Slide, 0, 1)
	acc := []Node{}
	for _, n := range nodes {
		if n.Kind == KindSeparator {
			slides = append(slides, Slide{Index: len(slides), Nodes: acc})
			acc = []Node{}
			continue
		}
		acc = append(acc, n)
	}
	return append(slides, Slide{Index: len(slides), Nodes: acc})
}
