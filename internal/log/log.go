// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
)

const tracePrefix = "TRACE: "

var traceEnabled bool

// InitLogger sets up Apex with a Handler writing to stderr and a log level
// from the FIELDMASK_LOG env variable. Stdout is reserved for documents.
func InitLogger() {
	InitLoggerTo(os.Stderr, os.Getenv("FIELDMASK_LOG"))
}

// InitLoggerTo sets up Apex to write to w at the named level. Unknown or empty
// levels fall back to error.
func InitLoggerTo(w io.Writer, level string) {
	level = strings.ToLower(strings.TrimSpace(level))
	traceEnabled = level == "trace"

	apexLevel := log.ErrorLevel
	switch level {
	case "trace", "debug":
		// Trace lines travel at debug level.
		apexLevel = log.DebugLevel
	case "info":
		apexLevel = log.InfoLevel
	case "warn":
		apexLevel = log.WarnLevel
	case "fatal":
		apexLevel = log.FatalLevel
	}

	log.SetHandler(&Handler{Writer: w})
	log.SetLevel(apexLevel)
}

// Handler formats log entries as "timestamp level message key=value...".
type Handler struct {
	mu     sync.Mutex
	Writer io.Writer
}

// HandleLog implements the log.Handler interface.
func (h *Handler) HandleLog(e *log.Entry) error {
	timestamp := e.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	message := e.Message
	level := "?"
	if strings.HasPrefix(message, tracePrefix) {
		level = "T"
		message = message[len(tracePrefix):]
	} else {
		switch e.Level {
		case log.DebugLevel:
			level = "D"
		case log.InfoLevel:
			level = "I"
		case log.WarnLevel:
			level = "W"
		case log.ErrorLevel:
			level = "E"
		case log.FatalLevel:
			level = "F"
		}
	}

	var fields strings.Builder
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(&fields, " %s=%v", name, e.Fields.Get(name))
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.Writer, "%s %s %s%s\n",
		timestamp.Format("2006-01-02 15:04:05"), level, message, fields.String())
	return err
}

// Tracef logs at Trace level (below Debug).
func Tracef(format string, args ...interface{}) {
	if traceEnabled {
		log.Debug(tracePrefix + fmt.Sprintf(format, args...))
	}
}

// Debugf logs at Debug level.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Infof logs at Info level.
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Warnf logs at Warn level.
func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

// Errorf logs at Error level.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// Debug logs at Debug level.
func Debug(msg string) {
	log.Debug(msg)
}

// WithError returns an entry with error.
func WithError(err error) *log.Entry {
	return log.WithError(err)
}
