package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel keeps a normal build quiet unless something is off.
const DefaultLevel = "warn"

// ParseLevel maps a level name to a zap level. Empty means DefaultLevel.
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		name = DefaultLevel
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return lvl, fmt.Errorf("unknown log level %q", name)
	}
	return lvl, nil
}

// New builds a console logger writing to w. Stdout belongs to the host
// protocol, so callers pass stderr.
func New(name, level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core).Named(name), nil
}
