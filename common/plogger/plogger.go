/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package plogger implements interfaces.Logger with optional file output,
// date-based rotation, and stdout mirroring.
package plogger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/PartDesk/PartDesk/common/interfaces"
)

// This package implements interfaces.Logger
var _ interfaces.Logger = (*PDLogger)(nil)

// Option is a function that configures a PDLogger
type Option func(*PDLogger) error

type PDLogger struct {
	fileHandle     *os.File
	logfile        string
	logStdout      bool
	debug          bool
	prefix         string
	retainDays     int
	currentLogDate string
}

// New creates a new instance of PDLogger with the provided options
func New(options ...Option) (interfaces.Logger, error) {
	p := &PDLogger{retainDays: 30}

	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}

	if p.logfile != "" {
		p.logfile = filepath.Clean(p.logfile)

		dir := filepath.Dir(p.logfile)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		// Carry the date of an existing log file forward so rotation
		// triggers on the first write of a new day
		if info, err := os.Stat(p.logfile); err == nil {
			p.currentLogDate = info.ModTime().Format("20060102")
		} else {
			p.currentLogDate = time.Now().Format("20060102")
		}

		fh, err := os.OpenFile(p.logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			// If unable to log to file, force stdout logging
			p.fileHandle = nil
			p.logStdout = true
		} else {
			p.fileHandle = fh
			_ = os.Chmod(p.logfile, 0644)
		}
	} else {
		p.logStdout = true
	}
	return p, nil
}

// WithPrefix sets a process name or similar short identifier
func WithPrefix(prefix string) Option {
	return func(p *PDLogger) error {
		p.prefix = prefix
		return nil
	}
}

// WithLogFile sets the log file for the PDLogger
func WithLogFile(logfile string) Option {
	return func(p *PDLogger) error {
		p.logfile = logfile
		return nil
	}
}

// WithLogStdout enables or disables logging to stdout
func WithLogStdout(logStdout bool) Option {
	return func(p *PDLogger) error {
		p.logStdout = logStdout
		return nil
	}
}

// WithDebug enables or disables debug logging
func WithDebug(debug bool) Option {
	return func(p *PDLogger) error {
		p.debug = debug
		return nil
	}
}

// WithRetention sets the number of days to retain rotated logs
func WithRetention(retainDays int) Option {
	return func(p *PDLogger) error {
		p.retainDays = retainDays
		return nil
	}
}

// Close flushes and closes the log file if one is open
func (p *PDLogger) Close() {
	if p.fileHandle != nil {
		_ = p.fileHandle.Sync()
		_ = p.fileHandle.Close()
	}
}

func (p *PDLogger) formatMessage(eid uint32, level string, message string, fields interfaces.Fields) string {
	msg := fmt.Sprintf("%s %s [%s] %04d %s",
		time.Now().Format("2006-01-02 15:04:05"),
		p.prefix, level, eid, message)

	if fields != nil {
		msg += ": " + fields.ToText()
	}

	return msg
}

// writeLog writes a log message and handles rotation if necessary
func (p *PDLogger) writeLog(eid uint32, level string, message string, fields interfaces.Fields) {
	if level == "DEBUG" && !p.debug {
		return
	}

	if err := p.rotateLogs(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "log rotation error: %s\n", err.Error())
	}

	tmp := p.formatMessage(eid, level, message, fields) + "\n"

	if p.fileHandle != nil {
		_, _ = p.fileHandle.WriteString(tmp)
		_ = p.fileHandle.Sync()
	}

	if p.logStdout {
		_, _ = os.Stdout.Write([]byte(tmp))
	}
}

func (p *PDLogger) Debug(eid uint32, message string, fields interfaces.Fields) {
	p.writeLog(eid, "DEBUG", message, fields)
}

func (p *PDLogger) Info(eid uint32, message string, fields interfaces.Fields) {
	p.writeLog(eid, "INFO", message, fields)
}

func (p *PDLogger) Warning(eid uint32, message string, fields interfaces.Fields) {
	p.writeLog(eid, "WARNING", message, fields)
}

func (p *PDLogger) Error(eid uint32, message string, fields interfaces.Fields) {
	p.writeLog(eid, "ERROR", message, fields)
}

func (p *PDLogger) Debugf(eid uint32, format string, v ...any) {
	p.writeLog(eid, "DEBUG", fmt.Sprintf(format, v...), nil)
}

func (p *PDLogger) Infof(eid uint32, format string, v ...any) {
	p.writeLog(eid, "INFO", fmt.Sprintf(format, v...), nil)
}

func (p *PDLogger) Warningf(eid uint32, format string, v ...any) {
	p.writeLog(eid, "WARNING", fmt.Sprintf(format, v...), nil)
}

func (p *PDLogger) Errorf(eid uint32, format string, v ...any) {
	p.writeLog(eid, "ERROR", fmt.Sprintf(format, v...), nil)
}
