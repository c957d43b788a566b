package errors

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler installs h as the process-wide handler. A nil h restores the
// default LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	handler = h
	handlerMu.Unlock()
}

// CurrentHandler returns the installed handler so callers can restore it later.
func CurrentHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report stamps err and hands it to the installed handler.
func Report(err *WidgetError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	CurrentHandler().HandleError(err)
}

// ReportPanic hands a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	CurrentHandler().HandlePanic(err)
}

// Warn reports a recoverable anomaly. The caller has already applied its
// fallback.
func Warn(op string, kind ErrorKind, widget string, format string, args ...any) {
	CurrentHandler().HandleWarning(&Warning{
		Op:        op,
		Kind:      kind,
		Widget:    widget,
		Message:   fmt.Sprintf(format, args...),
		Timestamp: time.Now(),
	})
}

// RecoverWithCallback must be deferred directly. It reports a panic under op
// and then calls callback, if any, with the recovered value.
//
//	defer errors.RecoverWithCallback("engine.paint", func(any) { aborted = true })
func RecoverWithCallback(op string, callback func(r any)) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
	if callback != nil {
		callback(r)
	}
}

// CaptureStack formats the caller's stack, skipping CaptureStack and its
// immediate caller.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function + "\n\t" + frame.File + ":" + strconv.Itoa(frame.Line) + "\n")
		if !more {
			break
		}
	}
	return sb.String()
}
