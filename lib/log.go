package lib

import (
	"fmt"
	"io"
	"log"
	"os"
	"regexp"

	"github.com/mattn/go-isatty"
	"github.com/oklog/ulid/v2"
)

const (
	colorRed   = "\x1b[0;31m"
	colorGreen = "\x1b[0;32m"
	colorBlue  = "\x1b[0;34m"
	colorReset = "\x1b[0m"
)

var ansiRe = regexp.MustCompile("\x1b\\[[^A-Za-z]*[A-Za-z]")

/*
	Log writes run output to the console and, with escape sequences
	stripped, to the diagnostic log file
*/
type Log struct {
	RunID string

	console *log.Logger
	file    *log.Logger
	color   bool
	closer  io.Closer
}

/*
	NewLog creates a log for one run. console may be nil; an empty path
	disables the file sink.
*/
func NewLog(console io.Writer, path string) (*Log, error) {
	l := &Log{RunID: ulid.Make().String()}

	if console != nil {
		l.console = log.New(console, "", 0)
		if f, ok := console.(*os.File); ok {
			l.color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	}

	if path != "" {
		fp, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		l.file = log.New(fp, "", log.LstdFlags)
		l.closer = fp
		l.file.Printf("run %s", l.RunID)
	}

	return l, nil
}

func (l *Log) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}

	return l.closer.Close()
}

func (l *Log) emit(msg string) {
	if l == nil {
		return
	}

	if l.console != nil {
		if l.color {
			l.console.Print(msg)
		} else {
			l.console.Print(StripANSI(msg))
		}
	}
	if l.file != nil {
		l.file.Print(StripANSI(msg))
	}
}

func (l *Log) Infof(format string, args ...any) {
	l.emit(fmt.Sprintf(format, args...))
}

func (l *Log) Warnf(format string, args ...any) {
	l.emit("WARNING " + fmt.Sprintf(format, args...))
}

/*
	Reject logs a rejected candidate, e.g.
	WARNING [UNKNOWN_PACKAGE] "Yageo's RC0402" (C25744): package RESISTOR_0402 doesn't exist
*/
func (l *Log) Reject(r *Rejection) {
	c := r.Candidate
	l.Warnf("[%s] %s%q%s (%s%s%s): %s",
		r.Reason,
		colorRed, c.DisplayName(), colorReset,
		colorGreen, c.Component.LCSCPart, colorReset,
		r.Message,
	)
}

func (l *Log) RowError(e *RowError) {
	l.Warnf("%s%s%s", colorBlue, e.Error(), colorReset)
}

func StripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}
