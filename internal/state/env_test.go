package state

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jask/stepdeck/internal/config"
)

func TestEnvFromContext(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)
	require.NotNil(t, env.Log)
	require.Same(t, env, EnvFromContext(ctx))
	require.GreaterOrEqual(t, env.Uptime().Nanoseconds(), int64(0))

	require.Panics(t, func() { EnvFromContext(context.Background()) })
}

func TestStoreOpensOnceAndCloses(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))
	env.Log = zaptest.NewLogger(t)

	_, err := env.Store()
	require.Error(t, err)

	env.Cfg = &config.Config{Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "db", "stepdeck.db")}}
	db, err := env.Store()
	require.NoError(t, err)
	again, err := env.Store()
	require.NoError(t, err)
	require.Same(t, db, again)

	require.NoError(t, env.Close())
	require.NoError(t, env.Close())
}
