// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package eval

// Env is a persistent runtime environment mapping identifiers to values.
//
// Like the type-environment, an Env is an immutable, singly-linked list of bindings which
// closures capture by reference. The nil *Env is the empty environment.
type Env struct {
	name string
	cell *cell
	next *Env
}

// A cell holds the value of a binding. The cell of a let binding is empty while its value is
// being computed, and is filled exactly once before the body of the let is evaluated.
type cell struct {
	value Value
}

// Extend returns a new environment which binds name to v and inherits all other bindings from e.
func (e *Env) Extend(name string, v Value) *Env {
	return &Env{name: name, cell: &cell{value: v}, next: e}
}

func (e *Env) extendPlaceholder(name string) (*Env, *cell) {
	c := &cell{}
	return &Env{name: name, cell: c, next: e}, c
}

// Lookup the value bound to name. Inner bindings shadow outer bindings.
//
// A let binding whose value is still being computed is reported as missing.
func (e *Env) Lookup(name string) (Value, bool) {
	for ; e != nil; e = e.next {
		if e.name == name {
			if e.cell.value == nil {
				return nil, false
			}
			return e.cell.value, true
		}
	}
	return nil, false
}

// Names returns the identifiers bound in the environment, innermost first, including shadowed bindings.
func (e *Env) Names() []string {
	var names []string
	for ; e != nil; e = e.next {
		names = append(names, e.name)
	}
	return names
}
