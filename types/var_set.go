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
	"github.com/benbjohnson/immutable"
)

var emptySet = immutable.NewSortedMap(nil)

var EmptyVarSet = VarSet{emptySet}

// VarSet is a persistent set of type-variable ids, ordered by id.
type VarSet struct {
	m *immutable.SortedMap
}

func NewVarSet(ids ...int) VarSet {
	b := NewVarSetBuilder()
	for _, id := range ids {
		b.Add(id)
	}
	return b.Build()
}

func (s VarSet) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

func (s VarSet) Has(id int) bool {
	if s.m == nil {
		return false
	}
	_, ok := s.m.Get(id)
	return ok
}

// Add returns a set containing id. The receiver is not modified.
func (s VarSet) Add(id int) VarSet {
	m := s.m
	if m == nil {
		m = emptySet
	}
	return VarSet{m.Set(id, struct{}{})}
}

// Range calls f for each id in ascending order until f returns false.
func (s VarSet) Range(f func(id int) bool) {
	if s.m == nil {
		return
	}
	iter := s.m.Iterator()
	for !iter.Done() {
		k, _ := iter.Next()
		if !f(k.(int)) {
			return
		}
	}
}

// Ids returns the ids in ascending order.
func (s VarSet) Ids() []int {
	ids := make([]int, 0, s.Len())
	s.Range(func(id int) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}

type VarSetBuilder struct {
	b *immutable.SortedMapBuilder
}

func NewVarSetBuilder() VarSetBuilder {
	return VarSetBuilder{immutable.NewSortedMapBuilder(emptySet)}
}

func (b VarSetBuilder) Len() int { return b.b.Len() }

func (b VarSetBuilder) Has(id int) bool {
	_, ok := b.b.Get(id)
	return ok
}

func (b VarSetBuilder) Add(id int) VarSetBuilder {
	b.b.Set(id, struct{}{})
	return b
}

func (b VarSetBuilder) Build() VarSet { return VarSet{b.b.Map()} }
