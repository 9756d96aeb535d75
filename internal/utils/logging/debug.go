package logging

import (
	"fastencode/internal/domain/consts"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
)

// Level is the current debug level (0 - 5).
var (
	Level int
	mu    sync.Mutex
)

// callerTag returns a tag describing the log call site.
func callerTag() string {
	pc, file, line, _ := runtime.Caller(2)
	file = filepath.Base(file)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())
	return fmt.Sprintf("["+consts.ColorBlue+"Function:"+consts.ColorReset+" %s - "+consts.ColorBlue+"File:"+consts.ColorReset+" %s : "+consts.ColorBlue+"Line:"+consts.ColorReset+" %d] ", funcName, file, line)
}

// E prints and logs an error message with the call site appended.
func E(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(consts.RedError+format+" "+callerTag()+"\n", args...)
	fmt.Print(msg)
	Write(msg, 0)
}

// W prints and logs a warning message.
func W(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(consts.YellowWarning+format+"\n", args...)
	fmt.Print(msg)
	Write(msg, 0)
}

// S prints and logs a success message.
func S(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(consts.GreenSuccess+format+"\n", args...)
	fmt.Print(msg)
	Write(msg, 0)
}

// D prints and logs a debug message when the debug level is at least l.
// Debug messages do not appear at level 0.
func D(l int, format string, args ...any) {
	if l > Level || Level == 0 {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(consts.YellowDebug+format+" "+callerTag()+"\n", args...)
	fmt.Print(msg)
	Write(msg, l)
}

// I prints and logs an info message.
func I(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(consts.BlueInfo+format+"\n", args...)
	fmt.Print(msg)
	Write(msg, 0)
}

// P prints and logs a plain message with no tag.
func P(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(format+"\n", args...)
	fmt.Print(msg)
	Write(msg, 0)
}
