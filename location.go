package zelle

import (
	"fmt"
	"runtime"
)

// Location describes where an active borrow was created.
// The zero Location means the call site could not be resolved.
type Location struct {
	File     string
	Line     int
	Function string
}

func (l Location) String() string {
	if l.File == "" {
		return "<unknown>"
	}
	if l.Function == "" {
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
	return fmt.Sprintf("%s:%d %s", l.File, l.Line, l.Function)
}

// LocationProbe resolves the call site of a borrow for diagnostics.
// A probe must be side-effect free; it can never fail the borrow itself.
type LocationProbe interface {
	// Capture returns a descriptor of the caller skip frames above the
	// immediate caller of Capture. skip 0 is the immediate caller.
	// The second return value is false if no descriptor is available.
	Capture(skip int) (Location, bool)
}

// runtimeProbe resolves call sites through the runtime call stack.
type runtimeProbe struct{}

func (runtimeProbe) Capture(skip int) (Location, bool) {
	var pcs [1]uintptr
	// +2 skips runtime.Callers and Capture itself.
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return Location{}, false
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	if frame.PC == 0 {
		return Location{}, false
	}
	return Location{File: frame.File, Line: frame.Line, Function: frame.Function}, true
}

var probe LocationProbe = runtimeProbe{}

// SetLocationProbe replaces the probe used to resolve borrow call sites.
// Passing nil disables location capture; borrows then record unresolved
// locations but behave the same otherwise.
//
// Must not be called while any cell has an outstanding borrow.
func SetLocationProbe(p LocationProbe) {
	probe = p
}
