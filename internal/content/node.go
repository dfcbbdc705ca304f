// Package content holds the compiled deck: typed content nodes, front
// matter and the split of a document into slides.
package content

import "strings"

// Kind is the closed set of node kinds the renderer understands.
type Kind int

const (
	KindGeneric Kind = iota
	KindHeading
	KindParagraph
	KindList
	KindListItem
	KindBlockquote
	KindLink
	KindSeparator
	KindText
	KindEmphasis
	KindStrong
	KindCode
	KindCodeBlock
)

var kindNames = map[Kind]string{
	KindGeneric:    "generic",
	KindHeading:    "heading",
	KindParagraph:  "paragraph",
	KindList:       "list",
	KindListItem:   "list-item",
	KindBlockquote: "blockquote",
	KindLink:       "link",
	KindSeparator:  "separator",
	KindText:       "text",
	KindEmphasis:   "emphasis",
	KindStrong:     "strong",
	KindCode:       "code",
	KindCodeBlock:  "code-block",
}

// Kinds lists every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindGeneric, KindHeading, KindParagraph, KindList, KindListItem,
		KindBlockquote, KindLink, KindSeparator, KindText, KindEmphasis,
		KindStrong, KindCode, KindCodeBlock,
	}
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Node is one compiled content node. Nodes are never mutated after Compile.
type Node struct {
	Kind     Kind
	Level    int    // heading level, 1-6
	Tag      string // source construct name for KindGeneric
	Text     string // literal for text, inline code and code blocks
	Props    map[string]string
	Children []Node
}

// Prop returns a property value or "".
func (n Node) Prop(name string) string {
	if n.Props == nil {
		return ""
	}
	return n.Props[name]
}

// PlainText flattens the node to its visible text.
func (n Node) PlainText() string {
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n Node) writeText(b *strings.Builder) {
	switch n.Kind {
	case KindText, KindCode, KindCodeBlock:
		b.WriteString(n.Text)
		return
	}
	for _, c := range n.Children {
		c.writeText(b)
	}
}

// Text builds a text leaf.
func Text(s string) Node { return Node{Kind: KindText, Text: s} }

// Elem builds a container node.
func Elem(kind Kind, children ...Node) Node {
	return Node{Kind: kind, Children: children}
}

// Heading builds a heading node of the given level.
func Heading(level int, children ...Node) Node {
	return Node{Kind: KindHeading, Level: level, Children: children}
}

// Separator builds a slide separator.
func Separator() Node { return Node{Kind: KindSeparator} }
