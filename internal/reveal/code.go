package reveal

// Phase is the mode of a code component.
type Phase int

const (
	Highlighting Phase = iota
	Interactive
)

func (p Phase) String() string {
	if p == Interactive {
		return "interactive"
	}
	return "highlighting"
}

// CodeState is Highlighting(Range) or Interactive.
type CodeState struct {
	Phase Phase
	Range int
}

// CodeSteps is the number of steps a code component claims: one per
// highlight range plus the final interactive step.
func CodeSteps(ranges []LineRange) int { return len(ranges) + 1 }

// CodeStateAt maps a local offset to the code component state.
func CodeStateAt(offset int, ranges []LineRange) CodeState {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(ranges) {
		return CodeState{Phase: Interactive}
	}
	return CodeState{Phase: Highlighting, Range: offset}
}

// PaneOptions are the static pane flags of a code block.
type PaneOptions struct {
	Editor   bool // always editable, skip the viewer
	Terminal bool
	Preview  bool
}

// Panes is the visibility of each sandbox pane.
type Panes struct {
	Viewer        bool
	Editor        bool
	Console       bool
	Preview       bool
	HiddenPreview bool // zero-size preview that backs a console
}

// PanesAt derives pane visibility for a code state.
func PanesAt(s CodeState, opts PaneOptions) Panes {
	editing := opts.Editor || s.Phase == Interactive
	p := Panes{
		Viewer:  !editing,
		Editor:  editing,
		Console: opts.Terminal,
	}
	if opts.Preview {
		p.Preview = editing
		p.HiddenPreview = !editing && opts.Terminal
	} else {
		p.HiddenPreview = opts.Terminal
	}
	return p
}
