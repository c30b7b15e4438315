package ui

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns the logger used for debug output. Debug messages are
// only emitted when debug is true; warnings and errors always are.
func NewLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "utgen",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}
