// Package steps allocates frame-local step indices to the components of a
// mounted slide and answers which of them have been reached.
//
// A Registry lives exactly as long as one mounted frame. Components claim
// contiguous blocks in mount order; blocks are never renumbered until the
// registry is Reset for the next frame.
package steps

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownHandle marks a query for a block that is not registered in
	// the current generation of the registry.
	ErrUnknownHandle = errors.New("steps: unknown handle")
	// ErrLengthChanged is returned when a key re-registers with a different length.
	ErrLengthChanged = errors.New("steps: block length changed")
	// ErrInvalidLength is returned for negative block lengths.
	ErrInvalidLength = errors.New("steps: invalid block length")
)

// Block is a contiguous range [Start, Start+Length) of step indices.
type Block struct {
	Start  int
	Length int
}

// End is the first index after the block.
func (b Block) End() int { return b.Start + b.Length }

// Handle identifies one registered block.
type Handle struct {
	key   string
	gen   uint64
	block Block
}

// Key is the owner key the handle was registered under.
func (h Handle) Key() string { return h.key }

// Block is the range owned by the handle.
func (h Handle) Block() Block { return h.block }

// Placeholder stands in for a component that has not been reached yet. It
// renders to nothing but still names the block it reserves.
type Placeholder struct {
	Block Block
}

func (Placeholder) String() string { return "" }

type entry struct {
	key   string
	block Block
}

// Registry tracks the current step and the blocks claimed in one frame.
// It is not safe for concurrent use; all calls come from the UI loop.
type Registry struct {
	current int
	next    int
	gen     uint64
	entries []entry
	byKey   map[string]int
}

// New returns an empty registry at step 0.
func New() *Registry {
	return &Registry{byKey: map[string]int{}}
}

// Register claims length steps for key at the end of the block list.
// Registering the same key again with the same length returns the
// existing handle.
func (r *Registry) Register(key string, length int) (Handle, error) {
	if length < 0 {
		return Handle{}, fmt.Errorf("%w: %d for %q", ErrInvalidLength, length, key)
	}
	if i, ok := r.byKey[key]; ok {
		e := r.entries[i]
		if e.block.Length != length {
			return Handle{}, fmt.Errorf("%w: %q has %d, got %d", ErrLengthChanged, key, e.block.Length, length)
		}
		return Handle{key: key, gen: r.gen, block: e.block}, nil
	}
	b := Block{Start: r.next, Length: length}
	r.entries = append(r.entries, entry{key: key, block: b})
	r.byKey[key] = len(r.entries) - 1
	r.next += length
	return Handle{key: key, gen: r.gen, block: b}, nil
}

// Unregister drops the block owned by h. Other blocks keep their start and
// Total and Step are left alone, even when the last block goes; only Reset
// rewinds the registry.
func (r *Registry) Unregister(h Handle) {
	if h.gen != r.gen {
		return
	}
	i, ok := r.byKey[h.key]
	if !ok {
		return
	}
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	delete(r.byKey, h.key)
	for k, idx := range r.byKey {
		if idx > i {
			r.byKey[k] = idx - 1
		}
	}
}

// Reset discards every block and returns to step 0. Handles issued before
// the reset become unknown.
func (r *Registry) Reset() {
	r.current = 0
	r.next = 0
	r.gen++
	r.entries = nil
	r.byKey = map[string]int{}
}

func (r *Registry) lookup(h Handle) Block {
	if h.gen == r.gen {
		if i, ok := r.byKey[h.key]; ok {
			return r.entries[i].block
		}
	}
	panic(fmt.Errorf("%w: %q", ErrUnknownHandle, h.key))
}

// IsActive reports whether the current step has reached the block start.
// It panics with ErrUnknownHandle for handles not registered here.
func (r *Registry) IsActive(h Handle) bool {
	return r.current >= r.lookup(h).Start
}

// LocalOffset is the progress inside the block, clamped to [0, length].
// It panics with ErrUnknownHandle for handles not registered here.
func (r *Registry) LocalOffset(h Handle) int {
	b := r.lookup(h)
	return clamp(r.current-b.Start, 0, b.Length)
}

// Placeholder returns the empty stand-in for h.
func (r *Registry) Placeholder(h Handle) Placeholder {
	return Placeholder{Block: r.lookup(h)}
}

// Step is the current frame-local step.
func (r *Registry) Step() int { return r.current }

// Total is the number of steps claimed so far. Step == Total means
// everything has been revealed.
func (r *Registry) Total() int { return r.next }

// SetStep moves to n, clamped to [0, Total].
func (r *Registry) SetStep(n int) {
	r.current = clamp(n, 0, r.next)
}

// Next advances one step. It reports false when already at Total.
func (r *Registry) Next() bool {
	if r.current >= r.next {
		return false
	}
	r.current++
	return true
}

// Prev goes back one step. It reports false when already at 0.
func (r *Registry) Prev() bool {
	if r.current <= 0 {
		return false
	}
	r.current--
	return true
}

// Blocks returns the registered blocks in registration order.
func (r *Registry) Blocks() []Block {
	out := make([]Block, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.block)
	}
	return out
}

// Len is the number of registered blocks.
func (r *Registry) Len() int { return len(r.entries) }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
