package util

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

var (
	traceEnabled atomic.Bool
	tracer       = log.New(os.Stderr, "trace: ", log.Lmicroseconds)
)

func EnableTrace() {
	traceEnabled.Store(true)
}

func DisableTrace() {
	traceEnabled.Store(false)
}

func TraceEnabled() bool {
	return traceEnabled.Load()
}

// SetTraceOutput redirects the trace log, stderr by default.
func SetTraceOutput(w io.Writer) {
	tracer.SetOutput(w)
}

// Trace logs only while tracing is enabled.
func Trace(format string, v ...interface{}) {
	if traceEnabled.Load() {
		tracer.Printf(format, v...)
	}
}
