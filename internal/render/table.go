package render

import (
	"errors"
	"fmt"
	"maps"

	"github.com/jask/stepdeck/internal/content"
)

// ErrNoRenderer reports a node kind with no renderer and no default.
var ErrNoRenderer = errors.New("render: no renderer")

// RenderFunc draws one node. Step-bound renderers claim their steps through
// the context.
type RenderFunc func(c *Context, n content.Node) string

// Table maps node kinds to renderers. Kinds without an entry go to the
// default renderer.
type Table struct {
	entries map[content.Kind]RenderFunc
	def     RenderFunc
}

// NewTable builds a table. Without a default every known kind must have an
// entry.
func NewTable(entries map[content.Kind]RenderFunc, def RenderFunc) (*Table, error) {
	t := &Table{entries: map[content.Kind]RenderFunc{}, def: def}
	for k, fn := range entries {
		if fn != nil {
			t.entries[k] = fn
		}
	}
	if def == nil {
		for _, k := range content.Kinds() {
			if _, ok := t.entries[k]; !ok {
				return nil, fmt.Errorf("%w for kind %s", ErrNoRenderer, k)
			}
		}
	}
	return t, nil
}

// With returns a copy of t with fn registered for kind.
func (t *Table) With(kind content.Kind, fn RenderFunc) *Table {
	cp := &Table{entries: maps.Clone(t.entries), def: t.def}
	if fn == nil {
		delete(cp.entries, kind)
	} else {
		cp.entries[kind] = fn
	}
	return cp
}

// Resolve returns the renderer for kind.
func (t *Table) Resolve(kind content.Kind) (RenderFunc, error) {
	if fn, ok := t.entries[kind]; ok {
		return fn, nil
	}
	if t.def != nil {
		return t.def, nil
	}
	return nil, fmt.Errorf("%w for kind %s", ErrNoRenderer, kind)
}

// DefaultTable is the stock terminal mapping.
func DefaultTable() *Table {
	t, _ := NewTable(map[content.Kind]RenderFunc{
		content.KindHeading:    renderHeading,
		content.KindParagraph:  renderParagraph,
		content.KindList:       renderList,
		content.KindListItem:   renderListItem,
		content.KindBlockquote: renderBlockquote,
		content.KindLink:       renderLink,
		content.KindSeparator:  renderNothing,
		content.KindText:       renderText,
		content.KindEmphasis:   renderEmphasis,
		content.KindStrong:     renderStrong,
		content.KindCode:       renderInlineCode,
		content.KindCodeBlock:  renderCodeBlock,
	}, renderGeneric)
	return t
}
