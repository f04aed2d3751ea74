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

import "go.uber.org/depcon/depevent"

// Register binds service S to provider P. The first registration of P
// installs factory as its recipe; later ones, for other services, share the
// instance that recipe builds and ignore factory.
//
//	depcon.Register[*DbImpl, DbService](c, depcon.Fields[DbImpl]())
//
// A provider registered against an interface is also bound to itself, so
// that Resolve[*DbImpl] works as well.
//
// Register fails with a DuplicateRegistrationError if S is already bound,
// and with an InvalidRegistrationError if P cannot serve as S. The container
// is left unchanged in both cases.
func Register[P, S any](c *Container, factory Factory[P]) error {
	return c.register(newRegistration[P, S](factory), false)
}

// RegisterOverwrite is Register without the duplicate check: an existing
// binding for S is replaced.
//
// The cached view of S is dropped so that the next Resolve[S] uses the new
// binding. Constructed providers are kept, and instances already handed out
// or injected keep pointing at the old provider.
func RegisterOverwrite[P, S any](c *Container, factory Factory[P]) error {
	return c.register(newRegistration[P, S](factory), true)
}

type registration struct {
	service  TypeKey
	provider TypeKey
	build    factory
	convert  converter

	// set if P cannot be bound to S
	err error
}

func newRegistration[P, S any](f Factory[P]) registration {
	r := registration{
		service:  KeyOf[S](),
		provider: KeyOf[P](),
	}
	if r.err = checkProvider(r.provider, r.service); r.err != nil {
		return r
	}
	if f == nil {
		r.err = &InvalidRegistrationError{
			Service:  r.service,
			Provider: r.provider,
			Reason:   "factory must not be nil",
		}
		return r
	}

	r.build = func(c *Container) (any, error) {
		p, err := f(c)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	r.convert = convertTo[P, S]()
	return r
}

func (c *Container) register(r registration, overwrite bool) error {
	_, existed := c.bindings[r.service]
	selfBind, err := c.bind(r, overwrite)
	c.log.LogEvent(&depevent.Registered{
		ServiceName:  r.service.Name(),
		ProviderName: r.provider.Name(),
		Overwrite:    overwrite && existed && err == nil,
		Err:          err,
	})
	if selfBind {
		c.selfBind(r.provider)
	}
	return err
}

// bind installs the factory and binding of r. It reports whether the
// provider still needs its self binding.
func (c *Container) bind(r registration, overwrite bool) (selfBind bool, _ error) {
	if r.err != nil {
		return false, r.err
	}

	if existing, ok := c.bindings[r.service]; ok {
		if !overwrite {
			return false, &DuplicateRegistrationError{
				Service:            r.service,
				RegisteredProvider: existing.provider,
				RejectedProvider:   r.provider,
			}
		}
		delete(c.services, r.service)
	}

	// Checked before the factory goes in: only a provider's first
	// registration gets a self binding.
	selfBind = c.needsSelfBinding(r)

	if _, ok := c.factories[r.provider]; !ok {
		c.factories[r.provider] = r.build
	}
	c.bindings[r.service] = binding{provider: r.provider, convert: r.convert}
	return selfBind, nil
}

// needsSelfBinding reports whether registering r is the first time its
// provider is seen under another service, with nothing bound to the
// provider type yet.
func (c *Container) needsSelfBinding(r registration) bool {
	if r.service == r.provider {
		return false
	}
	if _, ok := c.factories[r.provider]; ok {
		return false
	}
	_, bound := c.bindings[r.provider]
	return !bound
}

// selfBind binds provider as its own service with the identity converter.
// The provider must already have a factory.
func (c *Container) selfBind(provider TypeKey) {
	c.bindings[provider] = binding{provider: provider, convert: identity}
	c.log.LogEvent(&depevent.Registered{
		ServiceName:  provider.Name(),
		ProviderName: provider.Name(),
		Implicit:     true,
	})
}
