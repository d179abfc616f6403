/******************************************************************************
 * Copyright (c) 2025-2026 PartDesk Systems Inc.                              *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package plogger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// rotateLogs handles log rotation and deletion of old logs
func (p *PDLogger) rotateLogs() error {
	if p.logfile == "" {
		return nil
	}

	currentDate := time.Now().Format("20060102")
	if p.currentLogDate == currentDate {
		return nil
	}

	previousLogDate := p.currentLogDate

	if p.fileHandle != nil {
		_ = p.fileHandle.Sync()
		_ = p.fileHandle.Close()
	}

	// Rename the current log file
	newLogFileName := fmt.Sprintf("%s-%s", p.logfile, previousLogDate)
	if err := os.Rename(p.logfile, newLogFileName); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	// Open a new log file
	fh, err := os.OpenFile(p.logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		p.fileHandle = nil
		p.logStdout = true
		return fmt.Errorf("failed to open new log file after rotating: %w", err)
	}
	p.fileHandle = fh
	_ = os.Chmod(p.logfile, 0644)
	p.currentLogDate = currentDate

	if err := p.deleteOldLogs(); err != nil {
		return fmt.Errorf("failed to delete old log files: %w", err)
	}
	return nil
}

// deleteOldLogs deletes rotated log files older than retainDays
func (p *PDLogger) deleteOldLogs() error {
	if p.retainDays <= 1 {
		return nil
	}

	cutoffDate := time.Now().AddDate(0, 0, -p.retainDays).Format("20060102")
	logDir := filepath.Dir(p.logfile)

	files, err := os.ReadDir(logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	fileBaseName := filepath.Base(p.logfile)

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		fileName := file.Name()
		if len(fileName) > len(fileBaseName)+7 && fileName[:len(fileBaseName)] == fileBaseName {
			fileDate := fileName[len(fileBaseName)+1 : len(fileBaseName)+9]
			if fileDate < cutoffDate {
				if err = os.Remove(filepath.Join(logDir, fileName)); err != nil {
					return fmt.Errorf("failed to delete old log file: %w", err)
				}
			}
		}
	}

	return nil
}
