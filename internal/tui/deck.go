package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jask/stepdeck/internal/content"
	"github.com/jask/stepdeck/internal/render"
	"github.com/jask/stepdeck/internal/steps"
	"github.com/jask/stepdeck/internal/widgets"
)

var ErrEmptyDeck = errors.New("deck has no slides")

type Options struct {
	Render render.Options
	Keys   *KeyRegistry
	Logger *zap.Logger
	// Start is the slide shown first, clamped to the deck.
	Start int
	// ShowProgress draws one dot per slide above the status bar.
	ShowProgress bool
	// BackRevealsAll shows the previous slide fully revealed when stepping
	// back across a slide boundary.
	BackRevealsAll bool
}

// Deck presents slides one step at a time. Each slide gets a fresh mount on
// a shared registry, so re-entering a slide always starts from scratch.
type Deck struct {
	slides  []content.Slide
	index   int
	reg     *steps.Registry
	frame   *render.Frame
	opts    Options
	keys    *KeyRegistry
	log     *zap.Logger
	mountID string
	seen    map[int]bool
	screens ScreenStack

	width     int
	height    int
	status    string
	statusErr bool
	quitting  bool
}

func NewDeck(slides []content.Slide, opts Options) (*Deck, error) {
	if len(slides) == 0 {
		return nil, ErrEmptyDeck
	}
	if opts.Keys == nil {
		opts.Keys = NewKeyRegistry(DefaultKeyBindings())
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	d := &Deck{
		slides: slides,
		reg:    steps.New(),
		opts:   opts,
		keys:   opts.Keys,
		log:    opts.Logger,
		seen:   map[int]bool{},
		width:  100,
		height: 32,
	}
	d.mount(min(max(opts.Start, 0), len(slides)-1), false)
	return d, nil
}

// Index is the slide on screen.
func (d *Deck) Index() int { return d.index }

// Step is the current step of the mounted slide.
func (d *Deck) Step() int { return d.reg.Step() }

// Total is the step count of the mounted slide.
func (d *Deck) Total() int { return d.reg.Total() }

// SlidesSeen counts distinct slides shown so far.
func (d *Deck) SlidesSeen() int { return len(d.seen) }

// Status returns the status line and whether it reports an error.
func (d *Deck) Status() (string, bool) { return d.status, d.statusErr }

func (d *Deck) Init() tea.Cmd { return nil }

func (d *Deck) mount(i int, revealAll bool) {
	if d.frame != nil {
		d.frame.Unmount()
		d.frame = nil
	}
	d.index = i
	d.seen[i] = true
	d.mountID = uuid.NewString()

	f, err := render.Mount(d.slides[i], d.reg, d.opts.Render)
	if err != nil {
		d.log.Error("Unable to mount slide", zap.Int("slide", i), zap.String("mount", d.mountID), zap.Error(err))
		d.setError(fmt.Errorf("slide %d: %w", i+1, err))
		return
	}
	d.frame = f
	if revealAll {
		d.reg.SetStep(d.reg.Total())
	}
	d.setStatus("")
	d.log.Info("Slide mounted",
		zap.Int("slide", i),
		zap.String("title", d.slides[i].Title()),
		zap.Int("steps", d.reg.Total()),
		zap.String("mount", d.mountID))
}

func (d *Deck) setStatus(text string) {
	d.status = text
	d.statusErr = false
}

func (d *Deck) setError(err error) {
	if err == nil {
		d.setStatus("")
		return
	}
	d.status = err.Error()
	d.statusErr = true
}

func (d *Deck) next() {
	if d.reg.Next() {
		d.log.Debug("Step", zap.Int("step", d.reg.Step()), zap.String("mount", d.mountID))
		return
	}
	if d.index < len(d.slides)-1 {
		d.mount(d.index+1, false)
		return
	}
	d.setStatus("End of deck")
}

func (d *Deck) prev() {
	if d.reg.Prev() {
		d.log.Debug("Step", zap.Int("step", d.reg.Step()), zap.String("mount", d.mountID))
		return
	}
	if d.index > 0 {
		d.mount(d.index-1, d.opts.BackRevealsAll)
		return
	}
	d.setStatus("Start of deck")
}

func (d *Deck) scope() string {
	if top := d.screens.Top(); top != nil {
		return top.Scope()
	}
	return scopeDeck
}

func (d *Deck) quit() (tea.Model, tea.Cmd) {
	d.quitting = true
	d.log.Info("Presentation closed", zap.Int("slide", d.index), zap.Int("seen", len(d.seen)))
	return d, tea.Quit
}

func (d *Deck) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width, d.height = msg.Width, msg.Height
		return d, nil
	case StatusMsg:
		d.status = msg.Text
		d.statusErr = msg.IsErr
		return d, nil
	case QuitMsg:
		return d.quit()
	case JumpSelectedMsg:
		if msg.Index >= 0 && msg.Index < len(d.slides) {
			d.mount(msg.Index, false)
		}
		return d, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return d.quit()
		}
		if top := d.screens.Top(); top != nil {
			next, cmd, pop := top.Update(msg)
			if pop {
				d.screens.Pop()
			} else {
				d.screens.Replace(next)
			}
			return d, cmd
		}
		action, _ := d.keys.ActionFor(msg, scopeDeck)
		switch action {
		case actionQuit:
			return d.quit()
		case actionNext:
			d.next()
		case actionPrev:
			d.prev()
		case actionFirst:
			d.mount(0, false)
		case actionLast:
			d.mount(len(d.slides)-1, false)
		case actionRevealAll:
			d.reg.SetStep(d.reg.Total())
		case actionJump:
			d.screens.Push(newJumpScreen(d.keys, d.slides, d.index))
		case actionHelp:
			d.screens.Push(&helpScreen{keys: d.keys})
		}
		return d, nil
	}

	if top := d.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			d.screens.Pop()
		} else {
			d.screens.Replace(next)
		}
		return d, cmd
	}
	return d, nil
}

func (d *Deck) View() string {
	if d.quitting {
		return ""
	}
	width := max(1, d.width)
	footer := RenderFooter(d.keys, d.scope(), width)
	status := RenderStatusBar(d.status, d.statusErr, d.counter(), width)
	chrome := []string{status, footer}
	if d.opts.ShowProgress {
		chrome = append([]string{d.progress(width)}, chrome...)
	}
	bodyHeight := max(0, d.height-len(chrome))

	body := d.body(width, bodyHeight)
	if top := d.screens.Top(); top != nil && bodyHeight > 0 {
		body = widgets.RenderPopup(body, top.View(max(20, width-12), max(8, bodyHeight-4)), width, bodyHeight)
	}
	view := strings.Join(chrome, "\n")
	if bodyHeight > 0 {
		view = fitHeight(body, bodyHeight) + "\n" + view
	}
	return appStyle.Width(width).MaxWidth(width).Render(fitHeight(view, max(1, d.height)))
}

func (d *Deck) body(width, height int) string {
	if height <= 0 {
		return ""
	}
	if d.frame == nil {
		msg := helpDescStyle.Render("This slide could not be shown.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}
	inner := max(20, width-4)
	out := d.frame.View(inner)
	if d.frame.TitleSlide() {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, out)
	}
	rows := strings.Split(widgets.ClipHeight(out, height-1), "\n")
	for i, r := range rows {
		rows[i] = "  " + r
	}
	return "\n" + strings.Join(rows, "\n")
}

func (d *Deck) progress(width int) string {
	dots := make([]string, 0, len(d.slides))
	for i := range d.slides {
		if i == d.index {
			dots = append(dots, dotActiveStyle.Render("●"))
			continue
		}
		dots = append(dots, dotStyle.Render("○"))
	}
	line := ansi.Truncate(strings.Join(dots, " "), width, "…")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

func (d *Deck) counter() string {
	return counterStyle.Render(fmt.Sprintf("step %d/%d  slide %d/%d",
		d.reg.Step(), d.reg.Total(), d.index+1, len(d.slides)))
}
