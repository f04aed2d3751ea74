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

import (
	"fmt"
	"io"
)

// ConsoleLogger is a depcon event logger that attempts to write
// human-readable messages to the console.
//
// Use this during development.
type ConsoleLogger struct {
	W io.Writer
}

var _ Logger = (*ConsoleLogger)(nil)

func (l *ConsoleLogger) logf(msg string, args ...interface{}) {
	fmt.Fprintf(l.W, "[depcon] "+msg+"\n", args...)
}

// LogEvent logs the given event to the provided writer.
func (l *ConsoleLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		switch {
		case e.Err != nil:
			l.logf("ERROR\t\tFailed to register %s for %s: %v", e.ProviderName, e.ServiceName, e.Err)
		case e.Overwrite:
			l.logf("REGISTER\t%s <= %s (overwrite)", e.ServiceName, e.ProviderName)
		case e.Implicit:
			l.logf("REGISTER\t%s <= %s (implicit)", e.ServiceName, e.ProviderName)
		default:
			l.logf("REGISTER\t%s <= %s", e.ServiceName, e.ProviderName)
		}
	case *Resolved:
		switch {
		case e.Err != nil:
			l.logf("ERROR\t\tFailed to resolve %s: %v", e.ServiceName, e.Err)
		case e.Cached:
			l.logf("RESOLVE\t%s (cached)", e.ServiceName)
		default:
			l.logf("RESOLVE\t%s <= %s", e.ServiceName, e.ProviderName)
		}
	case *Constructed:
		if e.Err != nil {
			l.logf("ERROR\t\tFailed to construct %s (as %s) in %s: %v", e.ProviderName, e.ServiceName, e.Runtime, e.Err)
		} else {
			l.logf("CONSTRUCT\t%s (as %s) in %s", e.ProviderName, e.ServiceName, e.Runtime)
		}
	case *HookApplied:
		if e.Err != nil {
			l.logf("ERROR\t\tHook %s declared in %s failed: %v", e.HookName, e.CallerName, e.Err)
		} else {
			l.logf("HOOK\t\t%s declared in %s", e.HookName, e.CallerName)
		}
	case *Validated:
		if e.Err != nil {
			l.logf("ERROR\t\tValidation of %d bindings failed: %v", e.Bindings, e.Err)
		} else {
			l.logf("VALIDATED\t%d bindings", e.Bindings)
		}
	}
}
