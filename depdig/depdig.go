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

// Package depdig connects depcon containers with dig, the container behind
// fx, so that applications can move between the two one service at a time.
package depdig

import (
	"reflect"

	"go.uber.org/depcon"
	"go.uber.org/dig"
)

var _errType = reflect.TypeOf((*error)(nil)).Elem()

// Provide makes service S of c available to dc. S is resolved from c the
// first time dc needs it.
func Provide[S any](dc *dig.Container, c *depcon.Container, opts ...dig.ProvideOption) error {
	return dc.Provide(func() (S, error) {
		return depcon.Resolve[S](c)
	}, opts...)
}

// ProvideAll provides every service bound in c to dc. It stops at the first
// service dc refuses, usually one it already provides.
func ProvideAll(dc *dig.Container, c *depcon.Container) error {
	for _, b := range c.Bindings() {
		if err := dc.Provide(constructor(c, b.Service)); err != nil {
			return err
		}
	}
	return nil
}

// constructor builds a func() (T, error) that resolves service from c,
// where T is the service type.
func constructor(c *depcon.Container, service depcon.TypeKey) interface{} {
	fnType := reflect.FuncOf(nil, []reflect.Type{service.Type(), _errType}, false)
	fn := reflect.MakeFunc(fnType, func([]reflect.Value) []reflect.Value {
		out := reflect.New(service.Type()).Elem()
		errOut := reflect.New(_errType).Elem()

		v, err := c.ResolveKey(service)
		if err != nil {
			errOut.Set(reflect.ValueOf(err))
		} else {
			out.Set(reflect.ValueOf(v))
		}
		return []reflect.Value{out, errOut}
	})
	return fn.Interface()
}

// Factory builds a depcon factory that takes P from dc. Use it to register
// a provider that dig already knows how to build:
//
//	depcon.Register[*sql.DB, *sql.DB](c, depdig.Factory[*sql.DB](dc))
func Factory[P any](dc *dig.Container) depcon.Factory[P] {
	return func(*depcon.Container) (P, error) {
		var p P
		err := dc.Invoke(func(v P) {
			p = v
		})
		return p, err
	}
}
