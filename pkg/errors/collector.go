package errors

import "sync"

// Collector is an ErrorHandler that keeps everything it receives in memory.
// Hosts use it to surface warnings in their own UI; tests use it to assert
// on reported anomalies.
type Collector struct {
	mu       sync.Mutex
	errors   []*WidgetError
	panics   []*PanicError
	warnings []*Warning
}

// HandleError records err.
func (c *Collector) HandleError(err *WidgetError) {
	if err == nil {
		return
	}
	c.mu.Lock()
	c.errors = append(c.errors, err)
	c.mu.Unlock()
}

// HandlePanic records err.
func (c *Collector) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	c.mu.Lock()
	c.panics = append(c.panics, err)
	c.mu.Unlock()
}

// HandleWarning records w.
func (c *Collector) HandleWarning(w *Warning) {
	if w == nil {
		return
	}
	c.mu.Lock()
	c.warnings = append(c.warnings, w)
	c.mu.Unlock()
}

// Errors returns a copy of the recorded errors.
func (c *Collector) Errors() []*WidgetError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*WidgetError(nil), c.errors...)
}

// Panics returns a copy of the recorded panics.
func (c *Collector) Panics() []*PanicError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*PanicError(nil), c.panics...)
}

// Warnings returns a copy of the recorded warnings.
func (c *Collector) Warnings() []*Warning {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*Warning(nil), c.warnings...)
}

// Reset drops everything recorded so far.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.errors = nil
	c.panics = nil
	c.warnings = nil
	c.mu.Unlock()
}
