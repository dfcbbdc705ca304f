// Package state keeps what every command needs in one place.
package state

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/jask/stepdeck/internal/config"
	"github.com/jask/stepdeck/internal/database"
)

type envKey struct{}

// LocalEnv is created before command line parsing and filled by the root
// command's Before hook.
type LocalEnv struct {
	Cfg *config.Config
	Log *zap.Logger

	db    *sql.DB
	start time.Time
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func newLocalEnv() *LocalEnv {
	return &LocalEnv{Log: zap.NewNop(), start: time.Now()}
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// Store opens the position database on first use.
func (e *LocalEnv) Store() (*sql.DB, error) {
	if e.db != nil {
		return e.db, nil
	}
	if e.Cfg == nil {
		return nil, fmt.Errorf("store requested before configuration")
	}
	db, err := database.Open(e.Cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("unable to open store (%s): %w", e.Cfg.Database.Path, err)
	}
	e.db = db
	return db, nil
}

// Close releases the store and flushes the log.
func (e *LocalEnv) Close() (err error) {
	if e.db != nil {
		if er := e.db.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close store: %w", er))
		}
		e.db = nil
	}
	if e.Log != nil {
		if er := e.Log.Sync(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to sync log: %w", er))
		}
	}
	return err
}
