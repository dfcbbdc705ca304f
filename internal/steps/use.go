package steps

// State is what a step-bound component needs for one render.
type State struct {
	Handle      Handle
	Active      bool
	Offset      int
	Placeholder Placeholder
}

// UseSteps registers key for length steps (idempotently) and reads the
// component's activation state in one call.
func UseSteps(r *Registry, key string, length int) (State, error) {
	h, err := r.Register(key, length)
	if err != nil {
		return State{}, err
	}
	return State{
		Handle:      h,
		Active:      r.IsActive(h),
		Offset:      r.LocalOffset(h),
		Placeholder: r.Placeholder(h),
	}, nil
}
