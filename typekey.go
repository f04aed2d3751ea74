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

import "reflect"

// TypeKey identifies a Go type inside a Container. Keys for the same type
// compare equal with ==, no matter where they were obtained.
//
// The zero TypeKey identifies no type.
type TypeKey struct {
	id reflect.Type

	// derived from id; diagnostics only
	name string
}

// KeyOf returns the TypeKey of T. T may be an interface type.
//
//	KeyOf[io.Reader]()     // io.Reader
//	KeyOf[*bytes.Buffer]() // *bytes.Buffer
func KeyOf[T any]() TypeKey {
	return keyFor(reflect.TypeOf((*T)(nil)).Elem())
}

func keyFor(t reflect.Type) TypeKey {
	if t == nil {
		return TypeKey{}
	}
	return TypeKey{id: t, name: t.String()}
}

// Type returns the reflect.Type identified by k.
func (k TypeKey) Type() reflect.Type { return k.id }

// Name returns a human-readable name for the type.
func (k TypeKey) Name() string {
	if k.id == nil {
		return "<nil>"
	}
	return k.name
}

// Equal reports whether k and o identify the same type.
func (k TypeKey) Equal(o TypeKey) bool { return k.id == o.id }

// IsZero reports whether k identifies no type.
func (k TypeKey) IsZero() bool { return k.id == nil }

func (k TypeKey) String() string { return k.Name() }
