// Package logger builds the zap loggers used by the merkletree binary.
package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoggerConfig struct {
	Debug bool
	// Output replaces stderr when set, e.g. a terminal in raw mode
	// that needs its own line endings.
	Output io.Writer
}

// NewLogger returns a JSON production logger, or a human readable
// development logger at debug level when cfg.Debug is set.
// Both write to stderr unless cfg.Output is set.
func NewLogger(cfg *LoggerConfig) (*zap.Logger, error) {
	var zc zap.Config
	if cfg != nil && cfg.Debug {
		zc = zap.NewDevelopmentConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	if cfg == nil || cfg.Output == nil {
		return zc.Build()
	}

	var enc zapcore.Encoder
	if zc.Encoding == "console" {
		enc = zapcore.NewConsoleEncoder(zc.EncoderConfig)
	} else {
		enc = zapcore.NewJSONEncoder(zc.EncoderConfig)
	}
	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(cfg.Output)), zc.Level)
	return zap.New(core, zap.AddCaller()), nil
}
