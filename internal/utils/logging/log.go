// Package logging prints leveled console messages and mirrors them to a
// rotating log file.
package logging

import (
	"fmt"
	"log"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// ErrorArray collects errors encountered during the run.
	ErrorArray []error
	errArrayMu sync.Mutex

	loggable bool
	logger   *log.Logger
)

// Regular expression to match ANSI escape codes.
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// SetupLogging creates and/or opens the log file.
func SetupLogging(targetDir string) error {
	logFile := &lumberjack.Logger{
		Filename:   filepath.Join(targetDir, "fastencode.log"),
		MaxSize:    1, // MB before rotation
		MaxBackups: 3,
		Compress:   true,
	}

	logger = log.New(logFile, "", log.LstdFlags)
	loggable = true

	logger.Printf(":\n=========== %v ===========\n\n", time.Now().Format(time.RFC1123Z))
	return nil
}

// Write writes message information to the log file, stripped of ANSI codes.
func Write(msg string, level int) {
	// Callers hold the print mutex, do not lock here.
	if loggable && level < 2 {
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
		logger.Print(ansiEscape.ReplaceAllString(msg, ""))
	}
}

// AddToErrorArray stores an error for the end-of-run summary.
func AddToErrorArray(err error) {
	if err == nil {
		return
	}
	errArrayMu.Lock()
	ErrorArray = append(ErrorArray, err)
	errArrayMu.Unlock()
}

// ErrorSummary returns a printable summary of collected errors, or "".
func ErrorSummary() string {
	errArrayMu.Lock()
	defer errArrayMu.Unlock()

	if len(ErrorArray) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d error(s) encountered during run:\n", len(ErrorArray))
	for i, err := range ErrorArray {
		fmt.Fprintf(&b, "  %d) %v\n", i+1, err)
	}
	return b.String()
}
