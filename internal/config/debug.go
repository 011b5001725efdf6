package config

import (
	"log"
	"os"
	"path/filepath"
)

// DebugLog is the diagnostic channel for operator visibility. Every failure
// the client surfaces is also written here, separate from the user-visible
// message. Nil when debug logging is disabled.
var DebugLog *log.Logger

var debugFile *os.File

// InitDebugLog opens ~/.streamchat/debug.log and enables diagnostic logging.
func InitDebugLog() error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	path := filepath.Join(configDir, "debug.log")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}

	debugFile = f
	DebugLog = log.New(f, "", log.LstdFlags|log.Lmicroseconds)
	return nil
}

// CloseDebugLog flushes and disables diagnostic logging.
func CloseDebugLog() {
	if debugFile != nil {
		_ = debugFile.Close()
		debugFile = nil
	}
	DebugLog = nil
}

// Debugf writes to the diagnostic log when enabled.
func Debugf(format string, args ...any) {
	if DebugLog != nil {
		DebugLog.Printf(format, args...)
	}
}
