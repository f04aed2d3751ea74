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

// Package depcontest provides helpers for testing code that builds depcon
// containers.
package depcontest

import (
	"bytes"

	"go.uber.org/depcon"
	"go.uber.org/depcon/depevent"
)

// TB is a subset of the standard library's testing.TB interface. It's
// satisfied by both *testing.T and *testing.B.
type TB interface {
	Logf(string, ...interface{})
	Errorf(string, ...interface{})
	FailNow()
}

// NewTestLogger returns a depevent.Logger that writes events to the test's
// log, where they are only shown for failing or verbose runs.
func NewTestLogger(t TB) depevent.Logger {
	return &depevent.ConsoleLogger{W: testPrinter{t}}
}

type testPrinter struct {
	TB
}

func (p testPrinter) Write(b []byte) (int, error) {
	p.Logf("%s", bytes.TrimRight(b, "\n"))
	return len(b), nil
}

// New replays hooks into a fresh container that logs to t. The test fails
// immediately if a hook fails.
func New(t TB, hooks ...depcon.Hook) *depcon.Container {
	c, err := depcon.Auto(hooks, depcon.WithLogger(NewTestLogger(t)))
	if err != nil {
		t.Errorf("container didn't build cleanly: %v", err)
		t.FailNow()
	}
	return c
}

// Resolve resolves S from c, failing the test on error.
func Resolve[S any](t TB, c *depcon.Container) S {
	s, err := depcon.Resolve[S](c)
	if err != nil {
		t.Errorf("couldn't resolve %v: %v", depcon.KeyOf[S](), err)
		t.FailNow()
	}
	return s
}

// Validate resolves every binding in c, failing the test if any of them
// can't be built.
func Validate(t TB, c *depcon.Container) {
	if err := c.Validate(); err != nil {
		t.Errorf("container is invalid: %v", err)
		t.FailNow()
	}
}
