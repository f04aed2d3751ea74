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

import "fmt"

// DependencyCycleError is returned when resolving Service would require
// constructing a provider that is already under construction.
type DependencyCycleError struct {
	Service TypeKey

	// Stack lists the resolutions in flight, outermost first, ending with
	// the repeated one.
	Stack []Resolution
}

func (e *DependencyCycleError) Error() string {
	return fmt.Sprintf("could not resolve %v due to dependency cycle: %s",
		e.Service, formatStack(e.Stack))
}

// NoProviderError is returned when nothing is registered for Service.
type NoProviderError struct {
	Service TypeKey
}

func (e *NoProviderError) Error() string {
	return fmt.Sprintf("no provider registered for service %v", e.Service)
}

// DuplicateRegistrationError is returned by Register when Service is already
// bound. The existing binding is left untouched.
type DuplicateRegistrationError struct {
	Service            TypeKey
	RegisteredProvider TypeKey
	RejectedProvider   TypeKey
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf(
		"could not register %v for %v due to conflict with existing provider: %v",
		e.RejectedProvider, e.Service, e.RegisteredProvider)
}

// InvalidRegistrationError is returned when Provider cannot serve as Service.
type InvalidRegistrationError struct {
	Service  TypeKey
	Provider TypeKey
	Reason   string
}

func (e *InvalidRegistrationError) Error() string {
	return fmt.Sprintf("could not register %v for %v: %s", e.Provider, e.Service, e.Reason)
}

// InternalError reports a broken container invariant. It indicates a bug in
// depcon or a factory misbehaving (e.g. returning a nil interface).
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Message
}

func internalf(format string, args ...interface{}) error {
	return &InternalError{Message: fmt.Sprintf(format, args...)}
}
