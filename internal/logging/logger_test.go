package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrepareWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "deck.log")
	log, err := Prepare(Options{Level: "normal", File: path})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("slide mounted")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	require.Contains(t, out, "slide mounted")
	require.Contains(t, out, "stepdeck")
	require.False(t, strings.Contains(out, "hidden"))
}

func TestPrepareDebugOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.log")
	log, err := Prepare(Options{Level: "normal", File: path, Debug: true})
	require.NoError(t, err)
	log.Debug("step advanced")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "step advanced")
}

func TestPrepareNoneAndBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.log")
	log, err := Prepare(Options{Level: "none", File: path})
	require.NoError(t, err)
	log.Info("nothing")
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))

	_, err = Prepare(Options{Level: "loud", File: path})
	require.Error(t, err)
}
