package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/stepdeck/internal/content"
)

type jumpScreen struct {
	keys   *KeyRegistry
	input  textinput.Model
	picker *Picker
}

func newJumpScreen(keys *KeyRegistry, slides []content.Slide, current int) *jumpScreen {
	items := make([]PickerItem, 0, len(slides))
	for _, s := range slides {
		title := s.Title()
		if title == "" {
			title = "(untitled)"
		}
		items = append(items, PickerItem{
			ID:     s.Index,
			Label:  fmt.Sprintf("%2d  %s", s.Index+1, title),
			Search: title,
		})
	}
	in := textinput.New()
	in.Prompt = "Filter: "
	in.Placeholder = "slide title"
	in.Focus()

	p := NewPicker(items)
	for range current {
		p.CursorDown()
	}
	return &jumpScreen{keys: keys, input: in, picker: p}
}

func (s *jumpScreen) Title() string { return "Jump to slide" }
func (s *jumpScreen) Scope() string { return scopeJump }

func (s *jumpScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	switch {
	case s.keys.IsAction(keyMsg, actionClose, scopeJump):
		return s, nil, true
	case s.keys.IsAction(keyMsg, actionSelect, scopeJump):
		item, found := s.picker.CurrentItem()
		if !found {
			return s, StatusCmd("No slide matches"), false
		}
		return s, func() tea.Msg { return JumpSelectedMsg{Index: item.ID} }, true
	}
	switch keyMsg.String() {
	case "up", "ctrl+p":
		s.picker.CursorUp()
		return s, nil, false
	case "down", "ctrl+n":
		s.picker.CursorDown()
		return s, nil, false
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(keyMsg)
	s.picker.SetQuery(s.input.Value())
	return s, cmd, false
}

func (s *jumpScreen) View(width, height int) string {
	lines := []string{s.Title(), s.input.View(), ""}
	items := s.picker.Items()
	if len(items) == 0 {
		lines = append(lines, "  No slides match")
	}
	cursor := s.picker.Cursor()
	for i, item := range items {
		prefix := "  "
		label := item.Label
		if i == cursor {
			prefix = cursorStyle.Render("> ")
			label = cursorStyle.Render(label)
		}
		lines = append(lines, prefix+label)
	}
	lines = append(lines, "", helpDescStyle.Render("enter: jump  esc: cancel  up/down: move"))
	for i := range lines {
		lines[i] = ansi.Truncate(lines[i], max(20, width), "")
	}
	return fitHeight(strings.Join(lines, "\n"), max(6, min(height, len(lines))))
}

type helpScreen struct {
	keys *KeyRegistry
}

func (s *helpScreen) Title() string { return "Keys" }
func (s *helpScreen) Scope() string { return scopeHelp }

func (s *helpScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	if s.keys.IsAction(keyMsg, actionClose, scopeHelp) || s.keys.IsAction(keyMsg, actionHelp, scopeHelp) {
		return s, nil, true
	}
	if s.keys.IsAction(keyMsg, actionQuit, scopeHelp) {
		return s, func() tea.Msg { return QuitMsg{} }, true
	}
	return s, nil, false
}

func (s *helpScreen) View(width, height int) string {
	lines := []string{s.Title(), ""}
	for _, b := range s.keys.BindingsForScope(scopeDeck) {
		labels := make([]string, 0, len(b.Keys))
		for _, k := range b.Keys {
			labels = append(labels, keyLabel(k))
		}
		lines = append(lines, fmt.Sprintf("%s  %s",
			keyStyle.Render(fmt.Sprintf("%-28s", strings.Join(labels, " "))),
			helpDescStyle.Render(b.Description)))
	}
	return strings.Join(lines, "\n")
}
