// Package reveal derives what a step-bound component shows from its local
// step offset: highlighted code lines, which sandbox panes are visible,
// which list items are on screen and how they are presented.
package reveal

import (
	"fmt"
	"strconv"
	"strings"
)

// TagHighlight marks a highlighted line.
const TagHighlight = "highlight"

// LineRange is an inclusive 1-based line range.
type LineRange struct {
	From int
	To   int
}

// Lines expands the range. A reversed range yields nothing.
func (r LineRange) Lines() []int {
	if r.To < r.From {
		return nil
	}
	out := make([]int, 0, r.To-r.From+1)
	for l := r.From; l <= r.To; l++ {
		out = append(out, l)
	}
	return out
}

// Decorator is a derived per-line render instruction.
type Decorator struct {
	Line int
	Tag  string
}

// DeriveDecorators returns the highlighted lines for offset. At or past the
// terminal offset (len(ranges)) there is nothing to highlight and ok is
// false: the component is in its interactive state.
func DeriveDecorators(offset int, ranges []LineRange) (decorators []Decorator, ok bool) {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(ranges) {
		return nil, false
	}
	lines := ranges[offset].Lines()
	decorators = make([]Decorator, 0, len(lines))
	for _, l := range lines {
		decorators = append(decorators, Decorator{Line: l, Tag: TagHighlight})
	}
	return decorators, true
}

// LineSet indexes decorators by line.
func LineSet(decorators []Decorator) map[int]bool {
	set := make(map[int]bool, len(decorators))
	for _, d := range decorators {
		set[d.Line] = true
	}
	return set
}

// ParseRanges reads a highlight list like "2-4,7-9,12". Ranges keep their
// order; they may overlap.
func ParseRanges(expr string) ([]LineRange, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}
	parts := strings.Split(expr, ",")
	out := make([]LineRange, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		from, to, isRange := strings.Cut(p, "-")
		a, err := strconv.Atoi(strings.TrimSpace(from))
		if err != nil {
			return nil, fmt.Errorf("highlight range %q: %w", p, err)
		}
		b := a
		if isRange {
			if b, err = strconv.Atoi(strings.TrimSpace(to)); err != nil {
				return nil, fmt.Errorf("highlight range %q: %w", p, err)
			}
		}
		if a < 1 || b < a {
			return nil, fmt.Errorf("highlight range %q: invalid bounds", p)
		}
		out = append(out, LineRange{From: a, To: b})
	}
	return out, nil
}
