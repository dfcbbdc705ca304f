package present

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/stepdeck/internal/config"
	"github.com/jask/stepdeck/internal/content"
	"github.com/jask/stepdeck/internal/database/repository"
	"github.com/jask/stepdeck/internal/reveal"
)

const talk = `+++
title = "Zod"
author = "Colin"
list_mode = "single"
+++

# Zod

---

## Why

- types
- runtime checks

> parse, don't validate

---

` + "```ts {1,2-3}\nconst a = 1\nconst b = 2\nconst c = 3\n```\n"

func writeDeck(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(talk), 0o644))
	return path
}

func TestResolve(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeDeck(t, dir, "zod.md")

	got, err := Resolve("zod", dir)
	require.NoError(t, err)
	require.Equal(t, path, got)

	got, err = Resolve(path, "/nowhere")
	require.NoError(t, err)
	require.Equal(t, path, got)

	_, err = Resolve("missing", dir)
	require.ErrorIs(t, err, ErrWrongSlides)
	require.EqualError(t, err, "wrong slides: missing")

	_, err = Resolve(filepath.Join(dir, "gone.md"), dir)
	require.ErrorIs(t, err, ErrWrongSlides)

	_, err = Resolve("", dir)
	require.ErrorIs(t, err, ErrWrongSlides)
}

func TestRenderOptionsFrontMatterWins(t *testing.T) {
	t.Parallel()

	ui := config.UIConfig{ListMode: "cumulative", Transition: "slideup", CodeStyle: "monokai"}
	opts, err := RenderOptions(ui, content.Meta{ListMode: "single"})
	require.NoError(t, err)
	require.Equal(t, reveal.Single, opts.ListMode)
	require.Equal(t, reveal.SlideUp, opts.Transition)
	require.NotNil(t, opts.Sandbox)

	_, err = RenderOptions(config.UIConfig{Transition: "spin"}, content.Meta{})
	require.Error(t, err)
}

func TestWriteOutline(t *testing.T) {
	t.Parallel()

	doc, err := Load(writeDeck(t, t.TempDir(), "zod.md"))
	require.NoError(t, err)
	opts, err := RenderOptions(config.UIConfig{}, doc.Meta)
	require.NoError(t, err)

	var buf bytes.Buffer
	history := []repository.Session{{StartedAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)}}
	require.NoError(t, WriteOutline(&buf, doc, opts, history))

	out := buf.String()
	require.Contains(t, out, "Zod by Colin")
	require.Contains(t, out, "Why")
	// list (2) + blockquote (1) on slide two, two ranges + interactive on slide three
	require.Regexp(t, `2\s+Why\s+3\n`, out)
	require.Regexp(t, `3\s+-\s+3\n`, out)
	require.Contains(t, out, "3 slides, 6 steps")
	require.Contains(t, out, "presented 1 times, last on 2026-03-02")
}
