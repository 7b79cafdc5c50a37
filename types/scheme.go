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

// Scheme is a polymorphic type (a type-scheme): a body type universally quantified over
// a set of type-variable ids. A scheme with no quantified ids is monomorphic.
//
// The body is shared with the type graph it was generalized from; it is not copied.
type Scheme struct {
	Vars VarSet
	Type Type
}

// Monomorphic wraps t in a scheme with no quantified type-variables.
func Monomorphic(t Type) *Scheme { return &Scheme{Vars: EmptyVarSet, Type: t} }

// NewScheme creates a scheme quantified over the given type-variable ids.
func NewScheme(t Type, ids ...int) *Scheme { return &Scheme{Vars: NewVarSet(ids...), Type: t} }

// IsMonomorphic reports whether the scheme has no quantified type-variables.
func (s *Scheme) IsMonomorphic() bool { return s.Vars.Len() == 0 }
