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
	"reflect"
)

// A converter turns a cached provider into a view of one of its services.
// The result must alias the provider; it never copies it.
type converter func(provider any) (any, error)

// identity is the converter of a provider bound as its own service.
func identity(provider any) (any, error) { return provider, nil }

// convertTo builds the converter from P to S. Callers must have checked
// that P is assignable to S.
func convertTo[P, S any]() converter {
	if KeyOf[P]() == KeyOf[S]() {
		return identity
	}

	return func(v any) (any, error) {
		p, ok := v.(P)
		if !ok {
			return nil, internalf("cached provider is %T, expected %v", v, KeyOf[P]())
		}
		s, ok := any(p).(S)
		if !ok {
			return nil, internalf("provider %T does not implement %v", v, KeyOf[S]())
		}
		return s, nil
	}
}

// checkProvider verifies that provider can be bound to service.
//
// Providers are handed out by reference, so only pointers and interfaces
// qualify: binding a struct value to an interface would copy it.
func checkProvider(provider, service TypeKey) error {
	if provider.IsZero() || service.IsZero() {
		return &InvalidRegistrationError{
			Service:  service,
			Provider: provider,
			Reason:   "types must not be nil",
		}
	}

	switch provider.Type().Kind() {
	case reflect.Pointer, reflect.Interface:
	default:
		return &InvalidRegistrationError{
			Service:  service,
			Provider: provider,
			Reason:   fmt.Sprintf("provider must be a pointer or an interface, got %v", provider.Type().Kind()),
		}
	}

	if !provider.Type().AssignableTo(service.Type()) {
		return &InvalidRegistrationError{
			Service:  service,
			Provider: provider,
			Reason:   fmt.Sprintf("%v is not assignable to %v", provider, service),
		}
	}
	return nil
}
