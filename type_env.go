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
	"github.com/samber/lo"

	"github.com/wdamron/lambda/types"
)

// TypeEnv is a persistent type-environment mapping identifiers to type-schemes.
//
// A type-environment is an immutable, singly-linked list of bindings; Extend returns a new
// head which shares the existing list, so environments may be shared freely across scopes.
// The nil *TypeEnv is the empty environment.
//
// A type-environment cannot be used concurrently for inference if any of its schemes
// contain unbound monomorphic type-variables, since inference may bind them.
type TypeEnv struct {
	name      string
	scheme    *types.Scheme
	next      *TypeEnv
	nextVarId int
}

// Extend returns a new type-environment which binds name to s and inherits all other bindings from e.
func (e *TypeEnv) Extend(name string, s *types.Scheme) *TypeEnv {
	next := e.NextVarId()
	if id := maxVarId(s.Type); id >= next {
		next = id + 1
	}
	if ids := s.Vars.Ids(); len(ids) > 0 && ids[len(ids)-1] >= next {
		next = ids[len(ids)-1] + 1
	}
	return &TypeEnv{name: name, scheme: s, next: e, nextVarId: next}
}

// Declare a monomorphic type for an identifier. Type-variables will not be generalized.
func (e *TypeEnv) Declare(name string, t types.Type) *TypeEnv {
	return e.Extend(name, DontGeneralize(t))
}

// Declare a polymorphic type for an identifier. All unbound type-variables in t will be generalized.
func (e *TypeEnv) DeclarePolymorphic(name string, t types.Type) *TypeEnv {
	return e.Extend(name, Generalize(types.TopLevel-1, t))
}

// Lookup the type-scheme for an identifier. Inner bindings shadow outer bindings.
func (e *TypeEnv) Lookup(name string) (*types.Scheme, bool) {
	for ; e != nil; e = e.next {
		if e.name == name {
			return e.scheme, true
		}
	}
	return nil, false
}

// NextVarId returns an id which is greater than the id of every type-variable within the environment.
func (e *TypeEnv) NextVarId() int {
	if e == nil {
		return 0
	}
	return e.nextVarId
}

// Names returns the identifiers visible in the environment, innermost first.
func (e *TypeEnv) Names() []string {
	var names []string
	for ; e != nil; e = e.next {
		names = append(names, e.name)
	}
	return lo.Uniq(names)
}

// Len returns the number of bindings in the environment, including shadowed bindings.
func (e *TypeEnv) Len() int {
	n := 0
	for ; e != nil; e = e.next {
		n++
	}
	return n
}

func maxVarId(t types.Type) int {
	switch t := t.(type) {
	case *types.Var:
		if t.IsLinkVar() {
			return maxVarId(t.Link())
		}
		return t.Id()
	case *types.Arrow:
		p, r := maxVarId(t.Param), maxVarId(t.Result)
		if p > r {
			return p
		}
		return r
	}
	return -1
}

// NewStandardTypeEnv creates a type-environment containing the primitive functions:
//
//	add, subtract, multiply : int -> int -> int
//	succ                    : int -> int
//	equals                  : 'a -> 'a -> bool
//	if                      : bool -> 'a -> 'a -> 'a
func NewStandardTypeEnv() *TypeEnv {
	var env *TypeEnv
	intBinary := types.NewCurried(types.Int, types.Int, types.Int)
	env = env.Declare("add", intBinary)
	env = env.Declare("subtract", intBinary)
	env = env.Declare("multiply", intBinary)
	A := types.NewVar(env.NextVarId(), types.TopLevel+1)
	env = env.DeclarePolymorphic("equals", types.NewCurried(A, A, types.Bool))
	B := types.NewVar(env.NextVarId(), types.TopLevel+1)
	env = env.DeclarePolymorphic("if", types.NewCurried(types.Bool, B, B, B))
	env = env.Declare("succ", types.NewArrow(types.Int, types.Int))
	return env
}
