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

import (
	"testing"
)

func TestTypeString(t *testing.T) {
	a, b, c := NewVar(7, TopLevel), NewVar(3, TopLevel), NewVar(5, TopLevel)
	cases := []struct {
		t        Type
		expected string
	}{
		{Int, "int"},
		{Unit, "unit"},
		{NewCurried(Int, Int, Int), "int -> int -> int"},
		{NewArrow(NewArrow(Int, Bool), Int), "(int -> bool) -> int"},
		{NewArrow(Int, NewArrow(Bool, Int)), "int -> bool -> int"},
		{NewCurried(a, b, a), "'a -> 'b -> 'a"},
		{NewCurried(NewArrow(c, b), NewArrow(a, c), a, b), "('a -> 'b) -> ('c -> 'a) -> 'c -> 'b"},
		{nil, "<nil>"},
	}
	for _, tc := range cases {
		if s := TypeString(tc.t); s != tc.expected {
			t.Fatalf("expected %s, found %s", tc.expected, s)
		}
	}
}

func TestTypeStringFollowsLinks(t *testing.T) {
	a, b := NewVar(0, TopLevel), NewVar(1, TopLevel)
	b.SetLink(NewArrow(Int, Int))
	a.SetLink(b)
	if s := TypeString(NewArrow(a, Bool)); s != "(int -> int) -> bool" {
		t.Fatalf("type: %s", s)
	}
	a.Flatten()
	if _, ok := a.Link().(*Arrow); !ok {
		t.Fatalf("expected flattened link")
	}
}

func TestTypeStringManyVars(t *testing.T) {
	vars := make([]Type, 28)
	for i := range vars {
		vars[i] = NewVar(i, TopLevel)
	}
	s := TypeString(NewCurried(vars[0], vars[1:]...))
	const suffix = "'y -> 'z -> 'a1 -> 'b1"
	if len(s) < len(suffix) || s[len(s)-len(suffix):] != suffix {
		t.Fatalf("type: %s", s)
	}
}

func TestTypeStrings(t *testing.T) {
	a, b := NewVar(0, TopLevel), NewVar(1, TopLevel)
	names := TypeStrings(b, NewArrow(a, b))
	if names[0] != "'a" || names[1] != "'b -> 'a" {
		t.Fatalf("names: %v", names)
	}
}

func TestSchemeString(t *testing.T) {
	a := NewVar(4, TopLevel+1)
	if s := SchemeString(NewScheme(NewCurried(a, a, Bool), 4)); s != "forall 'a. 'a -> 'a -> bool" {
		t.Fatalf("scheme: %s", s)
	}
	if s := SchemeString(Monomorphic(NewArrow(Int, Int))); s != "int -> int" {
		t.Fatalf("scheme: %s", s)
	}
}

func TestVarStates(t *testing.T) {
	tv := NewVar(1, 2)
	if !tv.IsUnboundVar() || tv.VarType() != UnboundVar || tv.Id() != 1 || tv.Level() != 2 {
		t.Fatalf("expected unbound type-variable")
	}
	tv.SetLink(Int)
	if !tv.IsLinkVar() || tv.VarType() != LinkVar || RealType(tv) != Int {
		t.Fatalf("expected linked type-variable")
	}
	tv.SetLevel(0)
	if !tv.IsLinkVar() {
		t.Fatalf("linked type-variables cannot be unbound")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when re-linking a type-variable")
		}
	}()
	tv.SetLink(Bool)
}

func TestVarSet(t *testing.T) {
	s := NewVarSet(5, 1, 3)
	if s.Len() != 3 || !s.Has(3) || s.Has(2) {
		t.Fatalf("unexpected set contents: %v", s.Ids())
	}
	ids := s.Ids()
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 3 || ids[2] != 5 {
		t.Fatalf("expected ascending ids, found %v", ids)
	}
	s2 := s.Add(2)
	if s.Has(2) || !s2.Has(2) || s2.Len() != 4 {
		t.Fatalf("expected persistent add")
	}
	var zero VarSet
	if zero.Len() != 0 || zero.Has(0) || len(zero.Ids()) != 0 || zero.Add(1).Len() != 1 {
		t.Fatalf("expected usable zero set")
	}
	if EmptyVarSet.Len() != 0 {
		t.Fatalf("expected empty set")
	}

	seen := 0
	s.Range(func(id int) bool {
		seen++
		return id < 3
	})
	if seen != 2 {
		t.Fatalf("expected range to stop early, visited %d", seen)
	}
}
