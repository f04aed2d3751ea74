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
	"go.uber.org/depcon/depevent"
	"go.uber.org/multierr"
)

// Validate resolves every registered service, in the order of Bindings, and
// returns all failures combined into one error. It is a way to fail fast at
// startup instead of on first use.
//
// Individual errors can be retrieved with multierr.Errors.
func (c *Container) Validate() error {
	var err error

	bindings := c.Bindings()
	for _, b := range bindings {
		if _, rerr := c.ResolveKey(b.Service); rerr != nil {
			err = multierr.Append(err, rerr)
		}
	}

	c.log.LogEvent(&depevent.Validated{Bindings: len(bindings), Err: err})
	return err
}
