// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the console logger the CLI front end writes to stderr.
// quiet raises the threshold to Warn and wins over verbose, which lowers
// it to Debug.
func NewLogger(w io.Writer, quiet, verbose bool) *zap.Logger {
	lvl := zapcore.InfoLevel
	switch {
	case quiet:
		lvl = zapcore.WarnLevel
	case verbose:
		lvl = zapcore.DebugLevel
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)
	return zap.New(core)
}
