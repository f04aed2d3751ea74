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
	"reflect"
	"slices"

	"go.uber.org/depcon/depevent"
)

// Resolve returns the instance bound to service S, constructing its provider
// and the provider's dependencies on first use. Later calls return the
// identical instance.
//
//	repo, err := depcon.Resolve[RepoService](c)
//
// Resolve is also what factories use to obtain their own dependencies.
// Errors from nested resolutions are returned unchanged: a
// *NoProviderError, *DependencyCycleError or whatever a factory returned.
func Resolve[S any](c *Container) (S, error) {
	var zero S

	service := KeyOf[S]()
	v, err := c.ResolveKey(service)
	if err != nil {
		return zero, err
	}

	s, ok := v.(S)
	if !ok {
		return zero, internalf("service %v holds a %T", service, v)
	}
	return s, nil
}

// MustResolve is Resolve but panics on failure. It is meant for program
// entry points and tests.
func MustResolve[S any](c *Container) S {
	s, err := Resolve[S](c)
	if err != nil {
		panic(err)
	}
	return s
}

// ResolveKey is the untyped form of Resolve. The returned value can be
// asserted to the type identified by service.
func (c *Container) ResolveKey(service TypeKey) (any, error) {
	if v, ok := c.services[service]; ok {
		c.log.LogEvent(&depevent.Resolved{
			ServiceName:  service.Name(),
			ProviderName: c.bindings[service].provider.Name(),
			Cached:       true,
		})
		return v, nil
	}

	b, ok := c.bindings[service]
	if !ok {
		err := &NoProviderError{Service: service}
		c.logResolveError(service, "", err)
		return nil, err
	}

	v, err := c.initService(service, b)
	if err != nil {
		c.logResolveError(service, b.provider.Name(), err)
		return nil, err
	}

	c.log.LogEvent(&depevent.Resolved{
		ServiceName:  service.Name(),
		ProviderName: b.provider.Name(),
	})
	return v, nil
}

// Nested failures reach the caller through the outermost resolution, which
// is the only one that logs them.
func (c *Container) logResolveError(service TypeKey, provider string, err error) {
	if len(c.stack) > 0 {
		return
	}
	c.log.LogEvent(&depevent.Resolved{
		ServiceName:  service.Name(),
		ProviderName: provider,
		Err:          err,
	})
}

func (c *Container) initService(service TypeKey, b binding) (any, error) {
	provider, ok := c.providers[b.provider]
	if !ok {
		var err error
		provider, err = c.initProvider(Resolution{Service: service, Provider: b.provider})
		if err != nil {
			return nil, err
		}
	}

	v, err := b.convert(provider)
	if err != nil {
		return nil, err
	}
	c.services[service] = v
	return v, nil
}

func (c *Container) initProvider(res Resolution) (any, error) {
	cycle := slices.Contains(c.stack, res)
	c.stack = append(c.stack, res)
	// Deferred so that the stack only holds resolutions still in flight,
	// even if the factory panics.
	defer func() {
		c.stack = c.stack[:len(c.stack)-1]
	}()

	if cycle {
		return nil, &DependencyCycleError{
			Service: res.Service,
			Stack:   slices.Clone(c.stack),
		}
	}

	build, ok := c.factories[res.Provider]
	if !ok {
		return nil, internalf("no factory for provider %v bound to %v", res.Provider, res.Service)
	}

	start := c.clock.Now()
	provider, err := build(c)
	if err == nil && isNil(provider) {
		err = internalf("factory for %v returned nil", res.Provider)
	}
	c.log.LogEvent(&depevent.Constructed{
		ProviderName: res.Provider.Name(),
		ServiceName:  res.Service.Name(),
		Runtime:      c.clock.Since(start),
		Err:          err,
	})
	if err != nil {
		return nil, err
	}

	c.providers[res.Provider] = provider
	return provider, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
