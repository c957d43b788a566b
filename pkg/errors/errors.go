// Package errors provides structured error and warning reporting for slate.
//
// Widgets never return errors from their event, lifecycle, layout, or paint
// methods. Anomalies are reported here instead and handled by the installed
// ErrorHandler, which defaults to logging on stderr.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid widget or theme configuration.
	KindConfig
	// KindLayout indicates a layout contract violation (bad constraints).
	KindLayout
	// KindPaint indicates a painting error.
	KindPaint
	// KindEvent indicates an event delivery error.
	KindEvent
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindLayout:
		return "layout"
	case KindPaint:
		return "paint"
	case KindEvent:
		return "event"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// WidgetError represents a structured error raised while driving a widget.
type WidgetError struct {
	// Op is the operation that failed (e.g., "engine.Dispatch").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Widget is the type name of the widget involved, if any.
	Widget string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *WidgetError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WidgetError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.Paint").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Warning is a recoverable anomaly. The reporting code has already applied
// a fallback and carries on; the warning only records that it did.
type Warning struct {
	// Op is the operation that noticed the anomaly (e.g., "Slider.WithStep").
	Op string
	// Kind categorizes the warning.
	Kind ErrorKind
	// Widget is the type name of the widget involved, if any.
	Widget string
	// Message describes the anomaly and the applied fallback.
	Message string
	// Timestamp is when the warning was raised.
	Timestamp time.Time
}

func (w *Warning) String() string {
	if w.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %s", w.Op, w.Kind, w.Widget, w.Message)
	}
	return fmt.Sprintf("%s [%s]: %s", w.Op, w.Kind, w.Message)
}

// ErrorHandler receives errors reported by slate.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *WidgetError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleWarning is called for recoverable anomalies.
	HandleWarning(w *Warning)
}
