package logger

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

const formatSpec = "%{time:15:04:05.000} %{level:-7s} %{module:-10s} | %{message}"

type leveledLogger struct {
	log *logging.Logger
}

// New returns a logger for module writing to stderr at the given level
// name (DEBUG, INFO, ...). An unknown level falls back to INFO.
func New(module, level string) Logger {
	return NewWithWriter(os.Stderr, module, level)
}

func NewWithWriter(w io.Writer, module, level string) Logger {
	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(formatSpec))
	leveled := logging.AddModuleLevel(formatted)

	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	leveled.SetLevel(lvl, module)

	l := logging.MustGetLogger(module)
	l.SetBackend(leveled)
	return &leveledLogger{log: l}
}

func (l *leveledLogger) Debugf(format string, v ...any) { l.log.Debugf(format, v...) }
func (l *leveledLogger) Infof(format string, v ...any)  { l.log.Infof(format, v...) }
func (l *leveledLogger) Errorf(format string, v ...any) { l.log.Errorf(format, v...) }

type nopLogger struct{}

// Nop discards everything. Used in tests.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}
