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

// Package deplog holds logging helpers shared by depcon tests.
package deplog

import (
	"reflect"

	"go.uber.org/depcon/depevent"
)

// Spy is a depevent.Logger that captures logged events. It may be used in
// tests of depcon logs.
type Spy struct {
	events []depevent.Event
}

var _ depevent.Logger = &Spy{}

// LogEvent appends an Event.
func (s *Spy) LogEvent(event depevent.Event) {
	s.events = append(s.events, event)
}

// Events returns all captured events.
func (s *Spy) Events() []depevent.Event {
	events := make([]depevent.Event, len(s.events))
	copy(events, s.events)

	return events
}

// EventTypes returns all captured event types.
func (s *Spy) EventTypes() []string {
	types := make([]string, len(s.events))
	for i, e := range s.events {
		types[i] = reflect.TypeOf(e).Elem().Name()
	}

	return types
}

// Constructed returns the provider names of all successful Constructed
// events, in order.
func (s *Spy) Constructed() []string {
	var names []string
	for _, e := range s.events {
		if c, ok := e.(*depevent.Constructed); ok && c.Err == nil {
			names = append(names, c.ProviderName)
		}
	}
	return names
}

// Reset clears all messages from the Spy.
func (s *Spy) Reset() {
	s.events = s.events[:0]
}
