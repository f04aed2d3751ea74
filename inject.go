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

// A Factory builds a provider, pulling its dependencies out of the given
// container with Resolve. It is called at most once per container.
//
// Factories run while the container is in the middle of a resolution; they
// must not keep the container around for later use.
type Factory[P any] func(*Container) (P, error)

// Value returns a Factory that always hands out v. Use it to bind an
// instance that was built outside of the container.
func Value[P any](v P) Factory[P] {
	return func(*Container) (P, error) {
		return v, nil
	}
}

// _skipTag marks fields that Fields and Inject leave alone.
//
//	type Repo struct {
//		DB    Database
//		Cache *Cache `depcon:"-"`
//	}
const _skipTag = "depcon"

// Fields returns a Factory for *T which resolves every exported field of the
// struct T by its type, in declaration order. The first failure aborts the
// construction and is returned unchanged.
//
//	type RepoImpl struct {
//		DB DbService
//	}
//
//	depcon.Register[*RepoImpl, RepoService](c, depcon.Fields[RepoImpl]())
//
// Unexported fields and fields tagged `depcon:"-"` are skipped, so a struct
// without injectable fields is built without touching the container.
func Fields[T any]() Factory[*T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Struct {
		return func(*Container) (*T, error) {
			return nil, fmt.Errorf("Fields expected a struct type, got a %v", t)
		}
	}

	return func(c *Container) (*T, error) {
		target := new(T)
		if err := c.fill(reflect.ValueOf(target).Elem()); err != nil {
			return nil, err
		}
		return target, nil
	}
}

// Inject fills the given struct with values from the container.
//
// The target MUST be a pointer to a struct. Only exported fields without a
// `depcon:"-"` tag will be filled.
//
//	var target struct {
//		Repo RepoService
//	}
//	err := depcon.Inject(c, &target)
func Inject(c *Container, target interface{}) error {
	v := reflect.ValueOf(target)

	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("Inject expected a pointer to a struct, got a %T", target)
	}

	return c.fill(v.Elem())
}

func (c *Container) fill(v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		// Skip private fields.
		if f.PkgPath != "" || f.Tag.Get(_skipTag) == "-" {
			continue
		}

		dep, err := c.ResolveKey(keyFor(f.Type))
		if err != nil {
			return err
		}

		dv := reflect.ValueOf(dep)
		if !dv.Type().AssignableTo(f.Type) {
			return internalf("%v cannot be assigned to field %v.%v of type %v",
				dv.Type(), t, f.Name, f.Type)
		}
		v.Field(i).Set(dv)
	}
	return nil
}
