package tui

const (
	actionNext      = "next"
	actionPrev      = "prev"
	actionFirst     = "first"
	actionLast      = "last"
	actionJump      = "jump"
	actionRevealAll = "reveal-all"
	actionHelp      = "help"
	actionQuit      = "quit"
	actionClose     = "close"
	actionSelect    = "select"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"right", "l", " ", "space", "enter", "pgdown"}, Action: actionNext, Description: "next", Scopes: []string{scopeDeck}},
		{Keys: []string{"left", "h", "backspace", "pgup"}, Action: actionPrev, Description: "prev", Scopes: []string{scopeDeck}},
		{Keys: []string{"home", "g"}, Action: actionFirst, Description: "first", Scopes: []string{scopeDeck}},
		{Keys: []string{"end", "G"}, Action: actionLast, Description: "last", Scopes: []string{scopeDeck}},
		{Keys: []string{"/", "ctrl+k"}, Action: actionJump, Description: "jump", Scopes: []string{scopeDeck}},
		{Keys: []string{"a"}, Action: actionRevealAll, Description: "reveal all", Scopes: []string{scopeDeck}},
		{Keys: []string{"?"}, Action: actionHelp, Description: "help", Scopes: []string{scopeDeck, scopeHelp}},
		{Keys: []string{"q", "ctrl+c"}, Action: actionQuit, Description: "quit", Scopes: []string{scopeDeck, scopeHelp}},
		{Keys: []string{"esc"}, Action: actionClose, Description: "close", Scopes: []string{scopeJump, scopeHelp}},
		{Keys: []string{"enter"}, Action: actionSelect, Description: "jump", Scopes: []string{scopeJump}},
	}
}

// keyLabel is how a binding key is shown in the footer.
func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
