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

	"go.uber.org/depcon/depevent"
	"go.uber.org/depcon/internal/depreflect"
)

// A Hook is a registration declared once and replayed into any number of
// containers by Auto.
//
// Packages typically export the default bindings they offer:
//
//	var Hooks = []depcon.Hook{
//		depcon.Provide[*DbImpl, DbService](depcon.Fields[DbImpl]()),
//	}
type Hook struct {
	name   string
	caller string
	apply  func(*Container) error
}

// Provide declares a default binding of service S to provider P. It is the
// Hook form of Register.
func Provide[P, S any](factory Factory[P]) Hook {
	return Hook{
		name:   fmt.Sprintf("%v as %v", KeyOf[P](), KeyOf[S]()),
		caller: depreflect.Caller(),
		apply: func(c *Container) error {
			return Register[P, S](c, factory)
		},
	}
}

// HookFunc declares a Hook that runs fn against the container. fn may
// perform any number of registrations. An empty name is replaced by the
// name of fn.
func HookFunc(name string, fn func(*Container) error) Hook {
	if name == "" {
		name = depreflect.FuncName(fn)
	}
	return Hook{
		name:   name,
		caller: depreflect.Caller(),
		apply:  fn,
	}
}

// Name describes what the hook registers.
func (h Hook) Name() string { return h.name }

// Caller is the function that declared the hook.
func (h Hook) Caller() string { return h.caller }

func (h Hook) String() string {
	return fmt.Sprintf("depcon.Hook(%q from %v)", h.name, h.caller)
}

// Apply runs the hook against c.
func (h Hook) Apply(c *Container) error {
	if h.apply == nil {
		return fmt.Errorf("hook %q has no registration function", h.name)
	}
	return h.apply(c)
}

// Auto builds an empty Container and replays hooks into it in order. It
// stops at the first failing hook and returns its error, typically a
// *DuplicateRegistrationError when two hooks bind the same service.
func Auto(hooks []Hook, opts ...Option) (*Container, error) {
	c := Empty(opts...)
	for _, h := range hooks {
		err := h.Apply(c)
		c.log.LogEvent(&depevent.HookApplied{
			HookName:   h.name,
			CallerName: h.caller,
			Err:        err,
		})
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}
