package sandbox

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter colours source code line by line for the terminal.
type Highlighter struct {
	style     *chroma.Style
	formatter chroma.Formatter
}

// NewHighlighter uses the named chroma style, falling back to the default.
func NewHighlighter(style string) *Highlighter {
	s := styles.Get(style)
	if s == nil {
		s = styles.Fallback
	}
	f := formatters.Get("terminal256")
	if f == nil {
		f = formatters.Fallback
	}
	return &Highlighter{style: s, formatter: f}
}

// Lines returns one coloured string per source line. Lexing errors fall
// back to the plain lines.
func (h *Highlighter) Lines(lang, src string) []string {
	plain := strings.Split(src, "\n")
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Analyse(src)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, src)
	if err != nil {
		return plain
	}
	tokenLines := chroma.SplitTokensIntoLines(it.Tokens())
	out := make([]string, 0, len(plain))
	var buf bytes.Buffer
	for _, toks := range tokenLines {
		buf.Reset()
		if err := h.formatter.Format(&buf, h.style, chroma.Literator(toks...)); err != nil {
			return plain
		}
		out = append(out, strings.ReplaceAll(buf.String(), "\n", ""))
	}
	for len(out) < len(plain) {
		out = append(out, plain[len(out)])
	}
	return out[:len(plain)]
}
