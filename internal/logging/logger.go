package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the file log. Level is none, normal or debug.
type Options struct {
	Level string
	File  string
	// Debug forces debug level regardless of Level.
	Debug bool
}

// Prepare returns the program logger. The terminal belongs to the presenter,
// so everything goes to the file; level none yields a no-op logger.
func Prepare(opts Options) (*zap.Logger, error) {
	level := opts.Level
	if opts.Debug {
		level = "debug"
	}

	var lvl zap.AtomicLevel
	switch level {
	case "debug":
		lvl = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "normal", "":
		lvl = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "none":
		return zap.NewNop(), nil
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	if opts.File == "" {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, fmt.Errorf("log dir: %w", err)
	}
	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		if f, err = os.CreateTemp("", "stepdeck.*.log"); err != nil {
			return nil, fmt.Errorf("unable to access log destination (%s): %w", opts.File, err)
		}
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(f), lvl)
	log := zap.New(core, zap.AddCaller())
	if f.Name() != opts.File {
		log.Warn("Log file was redirected to new location", zap.String("location", f.Name()))
	}
	return log.Named("stepdeck"), nil
}
