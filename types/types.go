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

package types

// Type is the base interface for all types.
type Type interface {
	TypeName() string
}

func (t *Var) TypeName() string   { return "Var" }
func (t *Const) TypeName() string { return "Const" }
func (t *Arrow) TypeName() string { return "Arrow" }

// Type constant: `unit`, `int` or `bool`
type Const struct {
	Name string
}

// Shared primitive types. Constants are immutable, so every occurrence may
// reference the same value.
var (
	Unit = &Const{Name: "unit"}
	Int  = &Const{Name: "int"}
	Bool = &Const{Name: "bool"}
)

// Function type: `int -> int`
type Arrow struct {
	Param  Type
	Result Type
}

// NewArrow creates a function type from its parameter and result types.
func NewArrow(param, result Type) *Arrow { return &Arrow{Param: param, Result: result} }

// NewCurried creates a right-nested function type: NewCurried(a, b, c) is `a -> b -> c`.
func NewCurried(first Type, rest ...Type) Type {
	if len(rest) == 0 {
		return first
	}
	return &Arrow{Param: first, Result: NewCurried(rest[0], rest[1:]...)}
}

// Get the underlying type for a chain of linked type-variables, when applicable.
func RealType(t Type) Type {
	for {
		tv, ok := t.(*Var)
		if !ok || !tv.IsLinkVar() {
			return t
		}
		t = tv.Link()
	}
}

// SameConst reports whether a and b are the same primitive type.
func SameConst(a, b *Const) bool { return a == b || a.Name == b.Name }
