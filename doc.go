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

// Package depcon is a dependency container.
//
// A Container maps services, the types consumers ask for, to providers, the
// concrete types that implement them. Providers are built lazily, on first
// use, and at most once per container: every service backed by a provider
// shares the same instance.
//
// # Register
//
// Register binds a service to a provider and supplies the Factory that
// builds the provider. A Factory pulls its own dependencies out of the
// container with Resolve.
//
//	type DbService interface{ Query(string) error }
//	type RepoService interface{ Find(id int) (*User, error) }
//
//	type DbImpl struct{}
//	type RepoImpl struct {
//		DB DbService
//	}
//
//	c := depcon.Empty()
//	err := depcon.Register[*DbImpl, DbService](c, depcon.Fields[DbImpl]())
//	err = depcon.Register[*RepoImpl, RepoService](c, depcon.Fields[RepoImpl]())
//
// Fields builds a struct and resolves each of its exported fields by type.
// Hand-written factories work just as well:
//
//	depcon.Register[*RepoImpl, RepoService](c,
//		func(c *depcon.Container) (*RepoImpl, error) {
//			db, err := depcon.Resolve[DbService](c)
//			if err != nil {
//				return nil, err
//			}
//			return &RepoImpl{DB: db}, nil
//		})
//
// Providers must be pointers or interfaces so that every service view
// aliases the same instance. A provider registered against an interface is
// also resolvable as itself.
//
// # Resolve
//
// Resolve returns the instance bound to a service.
//
//	repo, err := depcon.Resolve[RepoService](c)
//
// Resolving a service twice returns the identical instance. Resolution
// fails with a *NoProviderError for unbound services and with a
// *DependencyCycleError when providers depend on each other in a loop.
//
// # Hooks
//
// Packages can declare default bindings as Hooks and let Auto replay them
// into a fresh container.
//
//	c, err := depcon.Auto([]depcon.Hook{
//		depcon.Provide[*DbImpl, DbService](depcon.Fields[DbImpl]()),
//		depcon.Provide[*RepoImpl, RepoService](depcon.Fields[RepoImpl]()),
//	})
//
// # Concurrency
//
// Containers are not safe for concurrent use. Factories call back into the
// container that is building them, so a container shared between goroutines
// needs every call wrapped in the same external lock.
package depcon // import "go.uber.org/depcon"
