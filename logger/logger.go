// Implements the construction of the zap loggers used by the
// command line: a human readable console output, optionally
// doubled by a rotated JSON log file.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger returned by New.
type Options struct {
	// Verbose enables the debug level on the console.
	Verbose bool
	// File, if not empty, is the path of a JSON log file,
	// rotated by size.
	File string
	// Console defaults to os.Stderr.
	Console io.Writer
}

// rotation settings of the log file
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

func fileEncoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.MessageKey = "message"
	cfg.LevelKey = "level"
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(cfg)
}

func consoleEncoder() zapcore.Encoder {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = "" // keep the console output short
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

// New builds a logger according to `opts`. The returned function
// flushes the logger and releases the log file; it should be called
// before exiting.
func New(opts Options) (*zap.Logger, func() error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	level := zap.InfoLevel
	if opts.Verbose {
		level = zap.DebugLevel
	}
	core := zapcore.NewCore(consoleEncoder(), zapcore.Lock(zapcore.AddSync(console)), level)

	var rotator *lumberjack.Logger
	if opts.File != "" {
		rotator = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   true,
		}
		fileCore := zapcore.NewCore(fileEncoder(), zapcore.AddSync(rotator), zap.InfoLevel)
		core = zapcore.NewTee(core, fileCore)
	}

	log := zap.New(core)
	closeFn := func() error {
		// syncing a terminal may fail, which is harmless
		_ = log.Sync()
		if rotator != nil {
			return rotator.Close()
		}
		return nil
	}
	return log, closeFn
}
