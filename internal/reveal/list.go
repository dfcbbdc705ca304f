package reveal

import (
	"fmt"
	"strings"
)

// ListMode decides which items of a revealing list are on screen.
type ListMode int

const (
	// Cumulative keeps every reached item visible.
	Cumulative ListMode = iota
	// Single shows only the item of the current step.
	Single
)

func (m ListMode) String() string {
	if m == Single {
		return "single"
	}
	return "cumulative"
}

// ParseListMode accepts "cumulative" or "single"; "" means cumulative.
func ParseListMode(s string) (ListMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cumulative":
		return Cumulative, nil
	case "single":
		return Single, nil
	}
	return Cumulative, fmt.Errorf("unknown list mode %q", s)
}

// ItemState is the transition state of item i for a list whose block is
// active at offset. Inactive lists keep every item in Initial.
func ItemState(mode ListMode, active bool, offset, i int) TransitionState {
	if !active || offset < i {
		return Initial
	}
	if mode == Single && offset != i {
		return Exit
	}
	return Active
}

// ItemVisible reports whether item i is on screen.
func ItemVisible(mode ListMode, active bool, offset, i int) bool {
	return ItemState(mode, active, offset, i) == Active
}

// ItemOffset turns the starts of a list's item blocks into the offset
// ItemState expects: the last item reached at current, or len(starts) once
// current has left the list at end. Nested blocks between two item starts
// keep the earlier item current.
func ItemOffset(starts []int, current, end int) int {
	if current >= end {
		return len(starts)
	}
	off := 0
	for i, s := range starts {
		if s > current {
			break
		}
		off = i
	}
	return off
}
