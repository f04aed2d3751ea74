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

package depcon

import (
	"fmt"
	"strings"

	"go.uber.org/depcon/depevent"
	"go.uber.org/depcon/internal/depclock"
)

// An Option configures a Container.
type Option interface {
	fmt.Stringer

	apply(*Container)
}

// Options converts a collection of Options into a single Option.
func Options(opts ...Option) Option {
	return optionGroup(opts)
}

type optionGroup []Option

func (og optionGroup) apply(c *Container) {
	for _, opt := range og {
		opt.apply(c)
	}
}

func (og optionGroup) String() string {
	items := make([]string, len(og))
	for i, opt := range og {
		items[i] = opt.String()
	}
	return fmt.Sprintf("depcon.Options(%s)", strings.Join(items, ", "))
}

// WithLogger specifies the depevent.Logger that receives the container's
// events. Passing nil restores the default, which discards them.
func WithLogger(logger depevent.Logger) Option {
	return withLoggerOption{logger: logger}
}

type withLoggerOption struct {
	logger depevent.Logger
}

func (o withLoggerOption) apply(c *Container) {
	if o.logger == nil {
		c.log = depevent.NopLogger
		return
	}
	c.log = o.logger
}

func (o withLoggerOption) String() string {
	return fmt.Sprintf("depcon.WithLogger(%v)", o.logger)
}

// withClock sets the clock used to time factories.
func withClock(clock depclock.Clock) Option {
	return withClockOption{clock: clock}
}

type withClockOption struct {
	clock depclock.Clock
}

func (o withClockOption) apply(c *Container) {
	c.clock = o.clock
}

func (o withClockOption) String() string {
	return fmt.Sprintf("withClock(%v)", o.clock)
}
