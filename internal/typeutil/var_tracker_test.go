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

package typeutil

import (
	"testing"

	"github.com/wdamron/lambda/types"
)

func TestVarTracker(t *testing.T) {
	var vt VarTracker
	vt.NextId = 10
	vars := make([]*types.Var, 0, blockSize*2+1)
	for i := 0; i < cap(vars); i++ {
		vars = append(vars, vt.New(i%3))
	}
	if vt.Count() != len(vars) {
		t.Fatalf("expected %d type-variables, found %d", len(vars), vt.Count())
	}
	for i, tv := range vars {
		if tv.Id() != 10+i || tv.Level() != i%3 || !tv.IsUnboundVar() {
			t.Fatalf("unexpected type-variable %d: id %d, level %d", i, tv.Id(), tv.Level())
		}
		if vt.Get(tv.Id()) != tv {
			t.Fatalf("expected lookup by id")
		}
	}
	if vt.Get(9) != nil || vt.Get(10+len(vars)) != nil {
		t.Fatalf("expected untracked ids to be missing")
	}

	vars[0].SetLink(vars[1])
	vars[1].SetLink(types.Int)
	vt.FlattenLinks()
	if vars[0].Link() != types.Int {
		t.Fatalf("expected flattened link")
	}

	vt.Reset()
	if vt.Count() != 0 {
		t.Fatalf("expected reset")
	}
	vt.NextId = 0
	tv := vt.New(types.TopLevel)
	if tv == vars[0] || tv.Id() != 0 || !tv.IsUnboundVar() {
		t.Fatalf("expected a fresh type-variable after reset")
	}
	if vars[1].Link() != types.Int {
		t.Fatalf("expected type-variables from the previous session to remain valid")
	}
}
