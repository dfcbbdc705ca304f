// Package render mounts a slide as a frame: it walks the slide's nodes
// through a kind -> renderer table, lets step-bound components claim their
// steps on the frame's registry and draws the result for the terminal.
package render

import (
	"strconv"
	"strings"

	"github.com/jask/stepdeck/internal/content"
	"github.com/jask/stepdeck/internal/reveal"
	"github.com/jask/stepdeck/internal/sandbox"
	"github.com/jask/stepdeck/internal/steps"
)

// DefaultWidth is used for the mount pass and for non-positive widths.
const DefaultWidth = 80

// Options configure how a frame is drawn.
type Options struct {
	Theme      Theme
	Table      *Table
	ListMode   reveal.ListMode
	Transition reveal.Transition
	Sandbox    sandbox.Sandbox
}

func (o Options) withDefaults() Options {
	if o.Table == nil {
		o.Table = DefaultTable()
	}
	if o.Theme == (Theme{}) {
		o.Theme = DefaultTheme()
	}
	if o.Transition == "" {
		o.Transition = reveal.Fade
	}
	if o.Sandbox == nil {
		o.Sandbox = sandbox.NewStatic("")
	}
	return o
}

// Frame is one mounted slide.
type Frame struct {
	slide   content.Slide
	reg     *steps.Registry
	opts    Options
	styles  styles
	handles map[string]steps.Handle
	order   []string
	// spans holds the end step of each list, fixed by the mount pass.
	spans map[string]int
}

// Mount resets reg and mounts slide on it. Every step-bound component
// registers during the mount pass, so Total is final once Mount returns.
func Mount(slide content.Slide, reg *steps.Registry, opts Options) (*Frame, error) {
	reg.Reset()
	opts = opts.withDefaults()
	f := &Frame{
		slide:   slide,
		reg:     reg,
		opts:    opts,
		styles:  newStyles(opts.Theme),
		handles: map[string]steps.Handle{},
		spans:   map[string]int{},
	}
	if _, err := f.render(DefaultWidth); err != nil {
		reg.Reset()
		return nil, err
	}
	return f, nil
}

// Slide is the mounted slide.
func (f *Frame) Slide() content.Slide { return f.slide }

// Registry is the registry the frame is mounted on.
func (f *Frame) Registry() *steps.Registry { return f.reg }

// Keys lists component keys in registration order.
func (f *Frame) Keys() []string { return append([]string(nil), f.order...) }

// Handle returns the handle registered under key.
func (f *Frame) Handle(key string) (steps.Handle, bool) {
	h, ok := f.handles[key]
	return h, ok
}

// TitleSlide reports whether the slide opens with a level-1 heading.
func (f *Frame) TitleSlide() bool {
	return len(f.slide.Nodes) > 0 &&
		f.slide.Nodes[0].Kind == content.KindHeading &&
		f.slide.Nodes[0].Level == 1
}

// View draws the frame at width for the registry's current step.
func (f *Frame) View(width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	out, _ := f.render(width)
	return out
}

// Unmount releases every block and resets the registry.
func (f *Frame) Unmount() {
	for _, key := range f.order {
		f.reg.Unregister(f.handles[key])
	}
	f.reg.Reset()
	f.handles = map[string]steps.Handle{}
	f.spans = map[string]int{}
	f.order = nil
}

func (f *Frame) render(width int) (string, error) {
	c := &Context{frame: f, Width: width}
	blocks := make([]string, 0, len(f.slide.Nodes))
	for i, n := range f.slide.Nodes {
		if out := c.renderAt(n, i); out != "" {
			blocks = append(blocks, out)
		}
	}
	return strings.Join(blocks, "\n\n"), c.err
}

// Context is passed to renderers for one render pass.
type Context struct {
	Width int

	frame *Frame
	path  []int
	err   error
}

// Theme returns the frame theme.
func (c *Context) Theme() Theme { return c.frame.opts.Theme }

// Key is the structural key of the node being rendered, e.g. "2/0/1".
func (c *Context) Key() string {
	parts := make([]string, len(c.path))
	for i, p := range c.path {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, "/")
}

// Fail records the first error of the pass.
func (c *Context) Fail(err error) {
	if c.err == nil && err != nil {
		c.err = err
	}
}

// UseSteps claims length steps for the current node.
func (c *Context) UseSteps(length int) steps.State {
	key := c.Key()
	st, err := steps.UseSteps(c.frame.reg, key, length)
	if err != nil {
		c.Fail(err)
		return steps.State{}
	}
	if _, ok := c.frame.handles[key]; !ok {
		c.frame.handles[key] = st.Handle
		c.frame.order = append(c.frame.order, key)
	}
	return st
}

// spanEnd is the step just past everything registered under key. The first
// call happens in the mount pass, right after the node's children claimed
// their steps.
func (c *Context) spanEnd(key string) int {
	if end, ok := c.frame.spans[key]; ok {
		return end
	}
	end := c.frame.reg.Total()
	c.frame.spans[key] = end
	return end
}

// Render draws n through the table.
func (c *Context) Render(n content.Node) string {
	fn, err := c.frame.opts.Table.Resolve(n.Kind)
	if err != nil {
		c.Fail(err)
		return ""
	}
	return fn(c, n)
}

func (c *Context) renderAt(n content.Node, i int) string {
	c.path = append(c.path, i)
	out := c.Render(n)
	c.path = c.path[:len(c.path)-1]
	return out
}

// Children renders each child of n in order.
func (c *Context) Children(n content.Node) []string {
	out := make([]string, len(n.Children))
	for i, child := range n.Children {
		out[i] = c.renderAt(child, i)
	}
	return out
}

// Inline renders the children of n and concatenates them.
func (c *Context) Inline(n content.Node) string {
	return strings.Join(c.Children(n), "")
}

func (c *Context) options() Options { return c.frame.opts }

func (c *Context) styles() styles { return c.frame.styles }
