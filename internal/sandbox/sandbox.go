// Package sandbox is the boundary to the live-code collaborator. The deck
// only hands it files, decorators and pane visibility; it never asks the
// collaborator to run anything.
package sandbox

import (
	"path"
	"sort"

	"github.com/jask/stepdeck/internal/reveal"
)

// Mode selects between the read-only viewer and the editor.
type Mode int

const (
	Viewer Mode = iota
	Editor
)

// Project is the source handed to the sandbox.
type Project struct {
	Files    map[string]string
	Entry    string
	Template string
}

// EntrySource returns the entry file, falling back to the first file by name.
func (p Project) EntrySource() (string, string) {
	if src, ok := p.Files[p.Entry]; ok {
		return p.Entry, src
	}
	names := make([]string, 0, len(p.Files))
	for n := range p.Files {
		names = append(names, n)
	}
	sort.Strings(names)
	if len(names) == 0 {
		return "", ""
	}
	return names[0], p.Files[names[0]]
}

// Others lists the files besides name, sorted.
func (p Project) Others(name string) []string {
	out := make([]string, 0, len(p.Files))
	for n := range p.Files {
		if n != name {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}

// Language guesses a lexer name from the entry file extension.
func (p Project) Language() string {
	ext := path.Ext(p.Entry)
	if len(ext) > 1 {
		return ext[1:]
	}
	return p.Template
}

// View is the derived render state for one frame render.
type View struct {
	Mode          Mode
	Decorators    []reveal.Decorator
	HasDecorators bool
	Panes         reveal.Panes
}

// Sandbox draws the panes of a code project.
type Sandbox interface {
	Render(p Project, v View, width int) string
}
