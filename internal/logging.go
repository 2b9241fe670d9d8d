package internal

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"io"
	"os"
)

type LevelSet map[zapcore.Level]bool

func (ls LevelSet) Enabled(l zapcore.Level) bool {
	return ls[l]
}

// NewLogger writes the allowed levels to stdout and warnings and above to
// stderr, without timestamps or level prefixes.
func NewLogger(stdout, stderr io.Writer, levels ...zapcore.Level) *zap.Logger {
	allowed := make(LevelSet)
	for _, lvl := range levels {
		allowed[lvl] = true
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:       "", // Disable timestamp
		LevelKey:      "", // Disable log level
		CallerKey:     "", // Disable caller
		FunctionKey:   "", // Disable function name
		StacktraceKey: "", // Disable stacktrace
		MessageKey:    "msg",
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}

	consoleEncoder := zapcore.NewConsoleEncoder(encoderConfig)

	stdoutCore := zapcore.NewCore(consoleEncoder, zapcore.AddSync(stdout), zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l < zapcore.WarnLevel && allowed.Enabled(l)
	}))

	stderrCore := zapcore.NewCore(consoleEncoder, zapcore.AddSync(stderr), zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= zapcore.WarnLevel
	}))

	return zap.New(zapcore.NewTee(stdoutCore, stderrCore))
}

// InitLogger installs a logger on os.Stdout and os.Stderr as the zap global.
func InitLogger(debug bool) *zap.Logger {
	levels := []zapcore.Level{zapcore.InfoLevel}
	if debug {
		levels = append(levels, zapcore.DebugLevel)
	}

	logger := NewLogger(zapcore.Lock(os.Stdout), zapcore.Lock(os.Stderr), levels...)
	zap.ReplaceGlobals(logger)
	return logger
}
