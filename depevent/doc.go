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

// Package depevent defines a means of changing how depcon logs internal
// events.
//
// # Changing the Logger
//
// By default, the [NopLogger] is used and nothing is written.
//
// You can use the depcon.WithLogger option to change this behavior
// by passing an alternative implementation of the [Logger] interface.
//
//	depcon.Empty(depcon.WithLogger(&depevent.ConsoleLogger{W: os.Stderr}))
//
// If you're using Zap inside your application,
// you can use the [ZapLogger] implementation of the interface.
//
//	depcon.Empty(
//		depcon.WithLogger(&depevent.ZapLogger{Logger: log}),
//	)
//
// # Implementing a Custom Logger
//
// [Event] is a union type that represents all the different events that
// depcon can emit. You can use a type switch to handle each event type.
// See 'event.go' for a list of all the possible events.
//
//	func (l *MyLogger) LogEvent(e depevent.Event) {
//		switch e := e.(type) {
//		case *depevent.Constructed:
//			// ...
//		// ...
//		}
//	}
package depevent
