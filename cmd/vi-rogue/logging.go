package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logDir      = "logs"
	logFileName = "vi-rogue.log"
	maxLogSize  = 10 * 1024 * 1024
	maxBackups  = 3
)

// setupLogging routes the standard logger to a rotating file under logDir.
// Without debug all output is discarded so the terminal UI stays clean.
func setupLogging(debug bool) *lumberjack.Logger {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logger := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, logFileName),
		MaxSize:    maxLogSize / (1024 * 1024),
		MaxBackups: maxBackups,
	}
	log.SetOutput(logger)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	// First write opens the file and rotates an oversized one
	log.Printf("vi-rogue: logging started (pid %d)", os.Getpid())
	return logger
}
