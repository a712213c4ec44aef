// Package logger configures the go-logging backend shared by the binaries.
package logger

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

const formatSpec = "%{color:bold}%{level:6s}%{color:reset} %{module:-10s} | %{message}"

// Start installs a leveled stderr backend prefixed with progName at INFO.
// The returned backend can raise the level later, e.g. for --debug.
func Start(progName string) logging.LeveledBackend {
	return StartWriter(os.Stderr, progName)
}

// StartWriter is Start with an explicit destination.
func StartWriter(w io.Writer, progName string) logging.LeveledBackend {
	backend := logging.NewLogBackend(w, progName+": ", 0)
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	return leveled
}

// ParseLevel maps a level name such as "debug" or "WARNING" to a go-logging
// level, falling back to INFO for an empty name.
func ParseLevel(name string) (logging.Level, error) {
	if name == "" {
		return logging.INFO, nil
	}
	return logging.LogLevel(name)
}
