package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/stepdeck/internal/content"
)

const sampleDeck = "# Intro\n\n---\n\n## Agenda\n\n- one\n- two\n- three\n\n---\n\n## Code\n\n```js {1-2}\na\nb\nc\n```\n"

func containsPlain(s, sub string) bool { return strings.Contains(ansi.Strip(s), sub) }

func newTestDeck(t *testing.T, opts Options) *Deck {
	t.Helper()
	doc, err := content.Compile([]byte(sampleDeck))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	d, err := NewDeck(doc.Slides(), opts)
	if err != nil {
		t.Fatalf("new deck: %v", err)
	}
	d.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return d
}

func press(d *Deck, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = d.Update(m)
	}
	return cmd
}

var (
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
)

func TestDeckStepsThroughSlides(t *testing.T) {
	d := newTestDeck(t, Options{})
	if d.Index() != 0 || d.Total() != 0 {
		t.Fatalf("title slide: index=%d total=%d", d.Index(), d.Total())
	}

	press(d, keyRight)
	if d.Index() != 1 || d.Step() != 0 || d.Total() != 3 {
		t.Fatalf("agenda: index=%d step=%d total=%d", d.Index(), d.Step(), d.Total())
	}
	if containsPlain(d.View(), "two") {
		t.Fatalf("second item shown before its step")
	}

	press(d, keyRight)
	if d.Step() != 1 || !containsPlain(d.View(), "two") {
		t.Fatalf("second item not revealed at step 1")
	}

	press(d, keyRight, keyRight, keyRight)
	if d.Index() != 2 || d.Step() != 0 || d.Total() != 2 {
		t.Fatalf("code slide: index=%d step=%d total=%d", d.Index(), d.Step(), d.Total())
	}

	press(d, keyRight, keyRight, keyRight)
	if d.Index() != 2 || d.Step() != 2 {
		t.Fatalf("should stay on last slide fully revealed, index=%d step=%d", d.Index(), d.Step())
	}
	if msg, _ := d.Status(); msg != "End of deck" {
		t.Fatalf("status = %q", msg)
	}
	if d.SlidesSeen() != 3 {
		t.Fatalf("seen = %d", d.SlidesSeen())
	}
}

func TestDeckBackStartsAtStepZero(t *testing.T) {
	d := newTestDeck(t, Options{Start: 2})
	press(d, keyLeft)
	if d.Index() != 1 || d.Step() != 0 {
		t.Fatalf("back: index=%d step=%d", d.Index(), d.Step())
	}

	d = newTestDeck(t, Options{Start: 2, BackRevealsAll: true})
	press(d, keyLeft)
	if d.Index() != 1 || d.Step() != 3 {
		t.Fatalf("back reveals all: index=%d step=%d", d.Index(), d.Step())
	}

	d = newTestDeck(t, Options{})
	press(d, keyLeft)
	if d.Index() != 0 {
		t.Fatalf("should not move before first slide")
	}
}

func TestDeckRevealAllFirstLast(t *testing.T) {
	d := newTestDeck(t, Options{Start: 1})
	press(d, runeKey('a'))
	if d.Step() != d.Total() {
		t.Fatalf("reveal all: step=%d total=%d", d.Step(), d.Total())
	}
	press(d, runeKey('G'))
	if d.Index() != 2 || d.Step() != 0 {
		t.Fatalf("last: index=%d step=%d", d.Index(), d.Step())
	}
	press(d, runeKey('g'))
	if d.Index() != 0 {
		t.Fatalf("first: index=%d", d.Index())
	}
}

func TestDeckStartIsClamped(t *testing.T) {
	d := newTestDeck(t, Options{Start: 99})
	if d.Index() != 2 {
		t.Fatalf("start clamp: index=%d", d.Index())
	}
	if _, err := NewDeck(nil, Options{}); err != ErrEmptyDeck {
		t.Fatalf("expected ErrEmptyDeck, got %v", err)
	}
}

func TestDeckJumpPicker(t *testing.T) {
	d := newTestDeck(t, Options{})
	press(d, runeKey('/'))
	if d.screens.Len() != 1 || d.scope() != scopeJump {
		t.Fatalf("jump picker did not open")
	}
	if !containsPlain(d.View(), "Jump to slide") {
		t.Fatalf("jump picker not drawn")
	}

	press(d, runeKey('c'), runeKey('o'), runeKey('d'))
	cmd := press(d, tea.KeyMsg{Type: tea.KeyEnter})
	if d.screens.Len() != 0 {
		t.Fatalf("jump picker should close on select")
	}
	if cmd == nil {
		t.Fatalf("expected jump command")
	}
	d.Update(cmd())
	if d.Index() != 2 || d.Step() != 0 {
		t.Fatalf("jump: index=%d step=%d", d.Index(), d.Step())
	}

	press(d, runeKey('/'), tea.KeyMsg{Type: tea.KeyEsc})
	if d.screens.Len() != 0 || d.Index() != 2 {
		t.Fatalf("esc should cancel without moving")
	}
}

func TestDeckHelpAndQuit(t *testing.T) {
	d := newTestDeck(t, Options{})
	press(d, runeKey('?'))
	if d.scope() != scopeHelp || !containsPlain(d.View(), "reveal all") {
		t.Fatalf("help not shown")
	}
	press(d, runeKey('?'))
	if d.screens.Len() != 0 {
		t.Fatalf("help should toggle closed")
	}

	cmd := press(d, runeKey('q'))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if d.View() != "" {
		t.Fatalf("view should be empty after quit")
	}
}

func TestDeckViewShowsProgress(t *testing.T) {
	d := newTestDeck(t, Options{ShowProgress: true, Start: 1})
	out := d.View()
	if !containsPlain(out, "○ ● ○") {
		t.Fatalf("progress dots missing: %q", ansi.Strip(out))
	}
	if !containsPlain(out, "step 0/3  slide 2/3") {
		t.Fatalf("counter missing")
	}
	if got := strings.Count(out, "\n") + 1; got != 24 {
		t.Fatalf("view height = %d, want 24", got)
	}
}

func TestDeckMountErrorGoesToStatus(t *testing.T) {
	slides := []content.Slide{
		{Index: 0, Nodes: []content.Node{{Kind: content.KindCodeBlock, Text: "x", Props: map[string]string{"highlight": "5-1"}}}},
	}
	d, err := NewDeck(slides, Options{})
	if err != nil {
		t.Fatalf("new deck: %v", err)
	}
	msg, isErr := d.Status()
	if !isErr || !strings.Contains(msg, "slide 1") {
		t.Fatalf("status = %q err=%v", msg, isErr)
	}
	if !containsPlain(d.View(), "could not be shown") {
		t.Fatalf("expected error body")
	}
	press(d, keyRight)
	if d.Index() != 0 {
		t.Fatalf("single slide deck should stay put")
	}
}

func TestDeckStatusMessages(t *testing.T) {
	d := newTestDeck(t, Options{})
	d.Update(ErrorCmd(errors.New("store unavailable"))())
	if msg, isErr := d.Status(); msg != "store unavailable" || !isErr {
		t.Fatalf("status = %q err=%v", msg, isErr)
	}
	if !containsPlain(d.View(), "store unavailable") {
		t.Fatalf("error not drawn in status bar")
	}
	d.Update(StatusCmd("saved")())
	if msg, isErr := d.Status(); msg != "saved" || isErr {
		t.Fatalf("status = %q err=%v", msg, isErr)
	}
}
