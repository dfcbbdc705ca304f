package reveal

import (
	"fmt"
	"strings"
)

// TransitionState is the presentation phase of a revealable element.
type TransitionState int

const (
	Initial TransitionState = iota
	Active
	Exit
)

func (s TransitionState) String() string {
	switch s {
	case Active:
		return "active"
	case Exit:
		return "exit"
	}
	return "initial"
}

// Transition names a presentation preset.
type Transition string

const (
	Fade    Transition = "fade"
	SlideUp Transition = "slideup"
)

// ParseTransition accepts "fade" or "slideup"; "" means fade.
func ParseTransition(s string) (Transition, error) {
	switch Transition(strings.ToLower(strings.TrimSpace(s))) {
	case "", Fade:
		return Fade, nil
	case SlideUp:
		return SlideUp, nil
	}
	return Fade, fmt.Errorf("unknown transition %q", s)
}

// Presentation is how the terminal renderer draws an element.
type Presentation struct {
	Visible bool
	Indent  int
	PadTop  int
}

// Present maps a transition preset and state to presentation parameters.
// It is a pure function; the step engine never calls it.
func Present(t Transition, s TransitionState) Presentation {
	if s != Active {
		return Presentation{}
	}
	switch t {
	case SlideUp:
		return Presentation{Visible: true, Indent: 2, PadTop: 1}
	default:
		return Presentation{Visible: true}
	}
}
