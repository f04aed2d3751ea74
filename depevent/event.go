// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package depevent

import "time"

// Event defines an event emitted by depcon.
type Event interface {
	event() // Only depcon can implement this interface.
}

// Passing events by type to make Event hashable in the future.
func (*Registered) event()  {}
func (*Resolved) event()    {}
func (*Constructed) event() {}
func (*HookApplied) event() {}
func (*Validated) event()   {}

// Registered is emitted when a binding is added to the container, or when
// adding one fails.
type Registered struct {
	// ServiceName is the name of the service type being bound.
	ServiceName string

	// ProviderName is the name of the provider type backing the service.
	ProviderName string

	// Overwrite is true if the binding replaced an existing one.
	Overwrite bool

	// Implicit is true for the self binding a provider receives when it is
	// first registered against another service.
	Implicit bool

	// Err is non-nil if the registration was rejected.
	Err error
}

// Resolved is emitted after a service is looked up in the container.
type Resolved struct {
	ServiceName string

	// ProviderName is empty if no binding exists for the service.
	ProviderName string

	// Cached is true if the service view was already built.
	Cached bool

	Err error
}

// Constructed is emitted after a provider factory ran.
type Constructed struct {
	ProviderName string

	// ServiceName is the service whose resolution triggered the
	// construction.
	ServiceName string

	// Runtime is the time spent inside the factory, dependencies included.
	Runtime time.Duration

	Err error
}

// HookApplied is emitted for every hook replayed by depcon.Auto.
type HookApplied struct {
	HookName string

	// CallerName is the function that declared the hook.
	CallerName string

	Err error
}

// Validated is emitted when a container finished resolving all of its
// bindings.
type Validated struct {
	// Bindings is the number of services that were resolved.
	Bindings int

	Err error
}

// Logger defines interface used for logging.
type Logger interface {
	// LogEvent is called when a logging event is emitted.
	LogEvent(Event)
}

// NopLogger is a depcon event logger that ignores all messages.
var NopLogger = nopLogger{}

type nopLogger struct{}

var _ Logger = nopLogger{}

func (nopLogger) LogEvent(Event) {}

func (nopLogger) String() string { return "NopLogger" }
