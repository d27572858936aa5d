// Package log is the levelled logger of the host tools. Firmware builds print
// with println instead.
package log

import (
	"fmt"
	"io"
	"log"
	"os"

	"duecode-go/errcode"
)

type Level int

const (
	Prefix        = "[duesim] "
	ErrorPrefix   = "[error] "
	WarningPrefix = "[warn] "
	InfoPrefix    = "[info] "
	DebugPrefix   = "[debug] "
	HelpLevels    = "Must be one of: error, warning, info, debug."
)

const (
	ErrorLevel Level = iota
	WarningLevel
	InfoLevel
	DebugLevel
)

var levels = map[string]Level{
	"error":   ErrorLevel,
	"warning": WarningLevel,
	"info":    InfoLevel,
	"debug":   DebugLevel,
}

type Logger struct {
	level Level
	*log.Logger
}

var logger = &Logger{
	level:  InfoLevel,
	Logger: log.New(os.Stderr, Prefix, log.LstdFlags),
}

// ParseLevel maps a level name to a Level.
func ParseLevel(s string) (Level, error) {
	l, ok := levels[s]
	if !ok {
		return 0, &errcode.E{C: errcode.InvalidParams, Op: "log.ParseLevel", Msg: fmt.Sprintf("wrong log level %q. %s", s, HelpLevels)}
	}
	return l, nil
}

func SetLevel(s string) error {
	l, err := ParseLevel(s)
	if err != nil {
		return err
	}
	logger.level = l
	return nil
}

func Init(out io.Writer, level string) error {
	logger.SetOutput(out)
	return SetLevel(level)
}

func Enabled(l Level) bool { return logger.level >= l }

func logf(l Level, prefix, format string, v ...any) {
	if logger.level >= l {
		logger.Println(fmt.Sprintf(prefix+format, v...))
	}
}

func Error(format string, v ...any)   { logf(ErrorLevel, ErrorPrefix, format, v...) }
func Warning(format string, v ...any) { logf(WarningLevel, WarningPrefix, format, v...) }
func Info(format string, v ...any)    { logf(InfoLevel, InfoPrefix, format, v...) }
func Debug(format string, v ...any)   { logf(DebugLevel, DebugPrefix, format, v...) }
