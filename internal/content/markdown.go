package content

import (
	"strings"

	"github.com/russross/blackfriday/v2"
)

// Document is a compiled deck.
type Document struct {
	Meta  Meta
	Nodes []Node
}

// Slides splits the document body at its separators.
func (d Document) Slides() []Slide { return Segment(d.Nodes) }

// Compile turns Markdown with optional TOML front matter into content
// nodes. A thematic break (---, ***) becomes a separator.
func Compile(src []byte) (Document, error) {
	meta, body, err := splitFrontMatter(src)
	if err != nil {
		return Document{}, err
	}
	md := blackfriday.New(blackfriday.WithExtensions(blackfriday.CommonExtensions))
	root := md.Parse(body)

	doc := Document{Meta: meta}
	for c := root.FirstChild; c != nil; c = c.Next {
		doc.Nodes = append(doc.Nodes, convert(c))
	}
	doc.Nodes = attachFiles(doc.Nodes)
	return doc, nil
}

func convert(bf *blackfriday.Node) Node {
	var n Node
	switch bf.Type {
	case blackfriday.Heading:
		n = Node{Kind: KindHeading, Level: clampLevel(bf.Level)}
	case blackfriday.Paragraph:
		n = Node{Kind: KindParagraph}
	case blackfriday.List:
		n = Node{Kind: KindList}
		if bf.ListFlags&blackfriday.ListTypeOrdered != 0 {
			n.Props = map[string]string{"ordered": "true"}
		}
	case blackfriday.Item:
		n = Node{Kind: KindListItem}
	case blackfriday.BlockQuote:
		n = Node{Kind: KindBlockquote}
	case blackfriday.Link:
		n = Node{Kind: KindLink, Props: map[string]string{
			"href":  string(bf.Destination),
			"title": string(bf.Title),
		}}
	case blackfriday.HorizontalRule:
		return Separator()
	case blackfriday.Text:
		return Text(string(bf.Literal))
	case blackfriday.Softbreak:
		return Text(" ")
	case blackfriday.Hardbreak:
		return Text("\n")
	case blackfriday.Emph:
		n = Node{Kind: KindEmphasis}
	case blackfriday.Strong:
		n = Node{Kind: KindStrong}
	case blackfriday.Code:
		return Node{Kind: KindCode, Text: string(bf.Literal)}
	case blackfriday.CodeBlock:
		return codeBlock(string(bf.Info), string(bf.Literal))
	default:
		n = Node{Kind: KindGeneric, Tag: strings.ToLower(bf.Type.String())}
		if len(bf.Literal) > 0 {
			n.Text = string(bf.Literal)
		}
	}
	for c := bf.FirstChild; c != nil; c = c.Next {
		n.Children = append(n.Children, convert(c))
	}
	n.Children = attachFiles(n.Children)
	return n
}

// attachFiles folds every fence flagged attach into the code block right
// before it, as an extra file of the same project. An attached fence with
// no code block before it stays a block of its own.
func attachFiles(nodes []Node) []Node {
	out := nodes[:0]
	for _, n := range nodes {
		if n.Kind == KindCodeBlock && n.Prop("attach") == "true" && len(out) > 0 {
			if prev := &out[len(out)-1]; prev.Kind == KindCodeBlock {
				prev.Children = append(prev.Children, n)
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

func clampLevel(l int) int {
	switch {
	case l < 1:
		return 1
	case l > 6:
		return 6
	}
	return l
}

// codeBlock reads a fence info string such as
//
//	js {2-4,7-9} file=main.js terminal preview
//
// into node props. Bare words after the language become "true" flags.
// A following fence such as "js file=util.js attach" adds a file to it.
func codeBlock(info, literal string) Node {
	props := map[string]string{}
	fields := strings.Fields(info)
	for i, f := range fields {
		switch {
		case i == 0 && !strings.HasPrefix(f, "{") && !strings.Contains(f, "="):
			props["lang"] = f
		case strings.HasPrefix(f, "{") && strings.HasSuffix(f, "}"):
			props["highlight"] = strings.Trim(f, "{}")
		case strings.Contains(f, "="):
			k, v, _ := strings.Cut(f, "=")
			props[strings.ToLower(k)] = strings.Trim(v, `"'`)
		default:
			props[strings.ToLower(f)] = "true"
		}
	}
	return Node{
		Kind:  KindCodeBlock,
		Text:  strings.TrimSuffix(literal, "\n"),
		Props: props,
	}
}
