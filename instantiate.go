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

package lambda

import (
	"github.com/wdamron/lambda/types"
)

// instantiate replaces the quantified type-variables of s with fresh type-variables at the given level.
//
// Type-variables which are not quantified by s are shared with the original type graph, so
// constraints on them continue to propagate across scopes.
func (ti *InferenceContext) instantiate(level int, s *types.Scheme) types.Type {
	if s.IsMonomorphic() {
		return s.Type
	}
	ti.clearInstLookup()
	s.Vars.Range(func(id int) bool {
		ti.instLookup[id] = ti.varTracker.New(level)
		return true
	})
	return ti.instantiateType(s.Type)
}

func (ti *InferenceContext) instantiateType(t types.Type) types.Type {
	switch t := t.(type) {
	case *types.Var:
		if t.IsLinkVar() {
			return ti.instantiateType(t.Link())
		}
		if tv, ok := ti.instLookup[t.Id()]; ok {
			return tv
		}
		return t

	case *types.Arrow:
		return &types.Arrow{Param: ti.instantiateType(t.Param), Result: ti.instantiateType(t.Result)}
	}
	// constants are immutable and shared
	return t
}
