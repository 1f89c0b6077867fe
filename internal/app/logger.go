package app

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// NewLogger builds the process logger. Output goes to w and, when
// cfg.File is set, is appended to that file as well. The returned close
// func releases the file.
func NewLogger(cfg LogConfig, w io.Writer) (*log.Logger, func() error) {
	out := w
	var file *os.File
	if cfg.File != "" {
		if f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			out = io.MultiWriter(w, f)
			file = f
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "protmotif",
	})

	switch strings.ToLower(cfg.Level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info", "":
		logger.SetLevel(log.InfoLevel)
	case "warn", "warning":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
		logger.Warn("unknown log level, defaulting to info", "provided", cfg.Level)
	}

	if cfg.File != "" && file == nil {
		logger.Warn("log file could not be opened; logging to stderr only", "path", cfg.File)
	}

	closeFn := func() error { return nil }
	if file != nil {
		closeFn = file.Close
	}
	return logger, closeFn
}
