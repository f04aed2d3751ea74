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
	"bytes"
	"fmt"
	"sort"

	"go.uber.org/depcon/depevent"
	"go.uber.org/depcon/internal/depclock"
)

// Container holds service bindings and the singletons built for them.
//
// A Container is not safe for concurrent use. Factories call back into the
// container that is building them, so callers sharing one across goroutines
// must serialize every Register and Resolve call themselves.
type Container struct {
	// provider -> recipe
	factories map[TypeKey]factory

	// provider -> constructed instance, built at most once
	providers map[TypeKey]any

	// service -> view of a cached provider
	services map[TypeKey]any

	// service -> provider and conversion
	bindings map[TypeKey]binding

	// resolutions in flight, outermost first
	stack []Resolution

	log   depevent.Logger
	clock depclock.Clock
}

type factory func(*Container) (any, error)

type binding struct {
	provider TypeKey
	convert  converter
}

// Binding describes a service registered in a Container.
type Binding struct {
	Service  TypeKey
	Provider TypeKey
}

func (b Binding) String() string {
	return fmt.Sprintf("%v <= %v", b.Service, b.Provider)
}

// Empty builds a Container with no bindings.
func Empty(opts ...Option) *Container {
	c := &Container{
		factories: make(map[TypeKey]factory),
		providers: make(map[TypeKey]any),
		services:  make(map[TypeKey]any),
		bindings:  make(map[TypeKey]binding),
		log:       depevent.NopLogger,
		clock:     depclock.System,
	}
	for _, opt := range opts {
		opt.apply(c)
	}
	return c
}

// Has reports whether a binding exists for S.
func Has[S any](c *Container) bool {
	_, ok := c.bindings[KeyOf[S]()]
	return ok
}

// Bindings lists all registered services, sorted by service name.
func (c *Container) Bindings() []Binding {
	bs := make([]Binding, 0, len(c.bindings))
	for service, b := range c.bindings {
		bs = append(bs, Binding{Service: service, Provider: b.provider})
	}
	sort.Slice(bs, func(i, j int) bool {
		if bs[i].Service.Name() != bs[j].Service.Name() {
			return bs[i].Service.Name() < bs[j].Service.Name()
		}
		return bs[i].Provider.Name() < bs[j].Provider.Name()
	})
	return bs
}

func (c *Container) String() string {
	b := &bytes.Buffer{}
	fmt.Fprintln(b, "{bindings:")
	for _, bind := range c.Bindings() {
		_, built := c.providers[bind.Provider]
		fmt.Fprintln(b, bind.Service, "->", bind.Provider, "constructed:", built)
	}
	fmt.Fprintln(b, "}")
	return b.String()
}
