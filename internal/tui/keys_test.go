package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+k"}, Action: "jump", Scopes: []string{scopeDeck}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "jump", scopeDeck) {
		t.Fatalf("expected ctrl+k in deck scope")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "jump", scopeJump) {
		t.Fatalf("did not expect ctrl+k in jump scope")
	}
	if !reg.IsAction(runeKey('q'), "quit", scopeHelp) {
		t.Fatalf("expected q to match wildcard scope")
	}
}

func TestDefaultBindingsKeepCase(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	if got, _ := reg.ActionFor(runeKey('g'), scopeDeck); got != actionFirst {
		t.Fatalf("g = %q, want %q", got, actionFirst)
	}
	if got, _ := reg.ActionFor(runeKey('G'), scopeDeck); got != actionLast {
		t.Fatalf("G = %q, want %q", got, actionLast)
	}
	if got, _ := reg.ActionFor(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, scopeDeck); got != actionNext {
		t.Fatalf("space = %q, want %q", got, actionNext)
	}
	if got, _ := reg.ActionFor(tea.KeyMsg{Type: tea.KeyPgUp}, scopeDeck); got != actionPrev {
		t.Fatalf("pgup = %q, want %q", got, actionPrev)
	}
	if _, ok := reg.ActionFor(runeKey('z'), scopeDeck); ok {
		t.Fatalf("z should be unbound")
	}
}

func TestFooterListsScopeBindings(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	out := RenderFooter(reg, scopeDeck, 200)
	for _, want := range []string{"right", "next", "reveal all", "quit"} {
		if !containsPlain(out, want) {
			t.Fatalf("footer missing %q: %q", want, out)
		}
	}
	if containsPlain(out, "close") {
		t.Fatalf("footer shows modal bindings in deck scope")
	}
}
