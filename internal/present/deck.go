// Package present implements the stepdeck subcommands.
package present

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jask/stepdeck/internal/config"
	"github.com/jask/stepdeck/internal/content"
	"github.com/jask/stepdeck/internal/render"
	"github.com/jask/stepdeck/internal/reveal"
	"github.com/jask/stepdeck/internal/sandbox"
)

var ErrWrongSlides = errors.New("wrong slides")

// Resolve turns a deck argument into a file path. A path to an existing
// file is used as is; a bare name is looked up as dir/NAME.md.
func Resolve(name, dir string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: no deck given", ErrWrongSlides)
	}
	if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
		return name, nil
	}
	if strings.ContainsRune(name, filepath.Separator) || filepath.Ext(name) == ".md" {
		return "", fmt.Errorf("%w: %s", ErrWrongSlides, name)
	}
	path := filepath.Join(dir, name+".md")
	if fi, err := os.Stat(path); err != nil || fi.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrWrongSlides, name)
	}
	return path, nil
}

// Load reads and compiles the deck at path.
func Load(path string) (content.Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return content.Document{}, fmt.Errorf("unable to read deck: %w", err)
	}
	doc, err := content.Compile(src)
	if err != nil {
		return content.Document{}, fmt.Errorf("unable to compile deck %s: %w", path, err)
	}
	return doc, nil
}

// RenderOptions builds frame options from configuration. Front matter in
// the deck wins over configured list mode and transition.
func RenderOptions(ui config.UIConfig, meta content.Meta) (render.Options, error) {
	listMode, transition := ui.ListMode, ui.Transition
	if meta.ListMode != "" {
		listMode = meta.ListMode
	}
	if meta.Transition != "" {
		transition = meta.Transition
	}
	lm, err := reveal.ParseListMode(listMode)
	if err != nil {
		return render.Options{}, err
	}
	tr, err := reveal.ParseTransition(transition)
	if err != nil {
		return render.Options{}, err
	}
	return render.Options{
		ListMode:   lm,
		Transition: tr,
		Sandbox:    sandbox.NewStatic(ui.CodeStyle),
	}, nil
}
