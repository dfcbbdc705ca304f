package present

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/jask/stepdeck/internal/config"
	"github.com/jask/stepdeck/internal/content"
	"github.com/jask/stepdeck/internal/database/repository"
	"github.com/jask/stepdeck/internal/render"
	"github.com/jask/stepdeck/internal/state"
	"github.com/jask/stepdeck/internal/steps"
	"github.com/jask/stepdeck/internal/tui"
)

// Run is the present subcommand.
func Run(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("present")

	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many decks", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}
	path, err := Resolve(cmd.Args().First(), env.Cfg.Decks.Dir)
	if err != nil {
		return err
	}
	doc, err := Load(path)
	if err != nil {
		return err
	}
	ropts, err := RenderOptions(env.Cfg.UI, doc.Meta)
	if err != nil {
		return fmt.Errorf("bad presentation settings: %w", err)
	}
	slides := doc.Slides()
	deckID := repository.DeckID(path)

	// presenting works without a store
	db, err := env.Store()
	if err != nil {
		log.Warn("Presenting without saved positions", zap.Error(err))
		db = nil
	}

	start, err := startSlide(ctx, cmd, db, deckID)
	if err != nil {
		return err
	}

	var sessionID string
	if db != nil {
		if sessionID, err = repository.NewSessionRepo(db).Start(ctx, deckID); err != nil {
			log.Warn("Unable to record session", zap.Error(err))
		}
	}
	log.Info("Presenting deck",
		zap.String("path", path),
		zap.String("title", doc.Meta.Title),
		zap.Int("slides", len(slides)),
		zap.Int("start", start),
		zap.String("session", sessionID))

	deck, err := tui.NewDeck(slides, tui.Options{
		Render:         ropts,
		Logger:         log,
		Start:          start,
		ShowProgress:   env.Cfg.UI.ShowProgress,
		BackRevealsAll: env.Cfg.UI.BackRevealsAll,
	})
	if err != nil {
		return fmt.Errorf("unable to present %s: %w", path, err)
	}
	final, err := tea.NewProgram(deck, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("presentation failed: %w", err)
	}
	if d, ok := final.(*tui.Deck); ok {
		deck = d
	}

	if db == nil {
		return nil
	}
	if err := repository.NewPositionRepo(db).Save(ctx, repository.Position{DeckID: deckID, Path: path, Slide: deck.Index()}); err != nil {
		return fmt.Errorf("unable to save position: %w", err)
	}
	if sessionID != "" {
		if err := repository.NewSessionRepo(db).Finish(ctx, sessionID, deck.SlidesSeen()); err != nil {
			return fmt.Errorf("unable to finish session: %w", err)
		}
	}
	return nil
}

func startSlide(ctx context.Context, cmd *cli.Command, db *sql.DB, deckID string) (int, error) {
	if cmd.IsSet("slide") {
		n := cmd.Int("slide")
		if n < 1 {
			return 0, fmt.Errorf("slide numbers start at 1, got %d", n)
		}
		return n - 1, nil
	}
	if !cmd.Bool("resume") || db == nil {
		return 0, nil
	}
	p, err := repository.NewPositionRepo(db).Get(ctx, deckID)
	if errors.Is(err, repository.ErrNoPosition) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("unable to load saved position: %w", err)
	}
	return p.Slide, nil
}

// Outline is the outline subcommand: slide titles and step counts without
// a terminal UI.
func Outline(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	path, err := Resolve(cmd.Args().First(), env.Cfg.Decks.Dir)
	if err != nil {
		return err
	}
	doc, err := Load(path)
	if err != nil {
		return err
	}
	ropts, err := RenderOptions(env.Cfg.UI, doc.Meta)
	if err != nil {
		return fmt.Errorf("bad presentation settings: %w", err)
	}

	var history []repository.Session
	if db, err := env.Store(); err != nil {
		env.Log.Warn("Outline without history", zap.Error(err))
	} else if history, err = repository.NewSessionRepo(db).ListByDeck(ctx, repository.DeckID(path)); err != nil {
		env.Log.Warn("Unable to read history", zap.Error(err))
	}
	return WriteOutline(cmd.Root().Writer, doc, ropts, history)
}

// WriteOutline prints one row per slide with its step total.
func WriteOutline(w io.Writer, doc content.Document, opts render.Options, history []repository.Session) error {
	if w == nil {
		w = os.Stdout
	}
	if doc.Meta.Title != "" {
		header := doc.Meta.Title
		if doc.Meta.Author != "" {
			header += " by " + doc.Meta.Author
		}
		fmt.Fprintln(w, header)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tSTEPS")
	reg := steps.New()
	total := 0
	for _, s := range doc.Slides() {
		title := s.Title()
		if title == "" {
			title = "-"
		}
		count := "error"
		if f, err := render.Mount(s, reg, opts); err == nil {
			count = fmt.Sprint(reg.Total())
			total += reg.Total()
			f.Unmount()
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Index+1, title, count)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("unable to write outline: %w", err)
	}
	fmt.Fprintf(w, "%d slides, %d steps\n", len(doc.Slides()), total)
	if len(history) > 0 {
		fmt.Fprintf(w, "presented %d times, last on %s\n", len(history), history[0].StartedAt.Format("2006-01-02"))
	}
	return nil
}

// DumpConfig is the dumpconfig subcommand.
func DumpConfig(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	out := cmd.Root().Writer
	if fname := cmd.Args().First(); fname != "" {
		f, err := os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer f.Close()
		out = f
	}
	if out == nil {
		out = os.Stdout
	}

	data, err := config.Dump(*env.Cfg)
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
