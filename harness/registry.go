// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

package harness

import (
	"errors"
	"fmt"

	"github.com/coreos/pkg/capnslog"
)

var (
	plog = capnslog.NewPackageLogger("github.com/flatcar/utf", "harness")

	ErrRegistryFull = errors.New("harness: registry is full")
	ErrEmptyName    = errors.New("harness: test name is empty")
	ErrNilFunc      = errors.New("harness: test function is nil")

	// Default is the process-wide registry that Register adds to. It is
	// filled by init functions and only read once main starts.
	Default = NewRegistry(0)
)

// Func is the body of a single test.
type Func func(*T)

// Test is a registered test case.
type Test struct {
	Name string
	Func Func
}

// Registry is an ordered set of tests. Registration order is kept.
type Registry struct {
	capacity int
	tests    []*Test
}

// NewRegistry creates a registry that holds at most capacity tests. A
// capacity of zero or less means no limit.
func NewRegistry(capacity int) *Registry {
	return &Registry{capacity: capacity}
}

// Add appends a test. Names are not checked for uniqueness; Find returns
// the first test registered under a name.
func (r *Registry) Add(name string, fn Func) (*Test, error) {
	switch {
	case name == "":
		return nil, ErrEmptyName
	case fn == nil:
		return nil, fmt.Errorf("%w: %q", ErrNilFunc, name)
	case r.capacity > 0 && len(r.tests) >= r.capacity:
		return nil, fmt.Errorf("%w: cannot add %q, capacity is %d", ErrRegistryFull, name, r.capacity)
	}

	if _, ok := r.Find(name); ok {
		plog.Warningf("Duplicate test %q, only the first one can be selected by name", name)
	}

	t := &Test{Name: name, Func: fn}
	r.tests = append(r.tests, t)
	return t, nil
}

// Tests returns every registered test in registration order.
func (r *Registry) Tests() []*Test {
	return append([]*Test(nil), r.tests...)
}

// Find returns the first test with the given name.
func (r *Registry) Find(name string) (*Test, bool) {
	i := r.Index(name)
	if i < 0 {
		return nil, false
	}
	return r.tests[i], true
}

// Index returns the position of the first test with the given name, or
// -1 if there is none.
func (r *Registry) Index(name string) int {
	for i, t := range r.tests {
		if t.Name == name {
			return i
		}
	}
	return -1
}

func (r *Registry) Len() int {
	return len(r.tests)
}

// Names lists test names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.tests))
	for i, t := range r.tests {
		names[i] = t.Name
	}
	return names
}

// Register adds a test to the Default registry. It is meant to be called
// from an init function and panics if the test cannot be added, so a
// broken suite never reaches main.
func Register(name string, fn Func) *Test {
	t, err := Default.Add(name, fn)
	if err != nil {
		panic(err)
	}
	return t
}
