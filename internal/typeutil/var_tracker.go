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
	"github.com/wdamron/lambda/types"
)

const blockSize = 32

// VarTracker allocates type-variables for a single inference session.
//
// Type-variables are allocated in blocks (an arena) and numbered consecutively from NextId,
// so the id of a type-variable identifies its cell for the lifetime of the session.
type VarTracker struct {
	NextId int
	count  int
	vars   []*types.Var
	block  []types.Var
}

// Reset discards all tracked type-variables. Type-variables which are still referenced
// (e.g. by a returned type) remain valid; they are no longer tracked.
func (vt *VarTracker) Reset() {
	for i := range vt.vars {
		vt.vars[i] = nil
	}
	vt.count, vt.vars, vt.block = 0, vt.vars[:0], nil
}

// Count returns the number of type-variables allocated since the last reset.
func (vt *VarTracker) Count() int { return vt.count }

// Get returns the tracked type-variable with the given id, or nil when the id was not
// allocated by the tracker since the last reset.
func (vt *VarTracker) Get(id int) *types.Var {
	first := vt.NextId - vt.count
	if id < first || id >= vt.NextId {
		return nil
	}
	return vt.vars[id-first]
}

// FlattenLinks compresses the chains of linked type-variables allocated by the tracker.
func (vt *VarTracker) FlattenLinks() {
	for _, tv := range vt.vars {
		tv.Flatten()
	}
}

// New allocates an unbound type-variable with a fresh id at the given binding-level.
func (vt *VarTracker) New(level int) *types.Var {
	if len(vt.block) == 0 {
		vt.block = make([]types.Var, blockSize)
	}
	tv := &vt.block[0]
	vt.block = vt.block[1:]
	tv.SetId(vt.NextId)
	tv.SetLevel(level)
	vt.NextId, vt.count = vt.NextId+1, vt.count+1
	vt.vars = append(vt.vars, tv)
	return tv
}
