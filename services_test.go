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

package depcon_test

import (
	"go.uber.org/depcon"
)

type DbService interface {
	Name() string
}

type Named interface {
	Name() string
}

type RepoService interface {
	DB() DbService
}

type DbImpl struct {
	name string
}

func (d *DbImpl) Name() string {
	if d.name == "" {
		return "db"
	}
	return d.name
}

type OtherDb struct{}

func (*OtherDb) Name() string { return "other" }

type RepoImpl struct {
	Db DbService
}

func (r *RepoImpl) DB() DbService { return r.Db }

type CycleA interface{ a() }

type CycleB interface{ b() }

type CycleImplA struct {
	B CycleB
}

func (*CycleImplA) a() {}

type CycleImplB struct {
	A CycleA
}

func (*CycleImplB) b() {}

type Selfish struct {
	Self *Selfish
}

// counting wraps f so that every call increments n.
func counting[P any](n *int, f depcon.Factory[P]) depcon.Factory[P] {
	return func(c *depcon.Container) (P, error) {
		*n++
		return f(c)
	}
}
