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

// See "Efficient Generalization with Levels" (Oleg Kiselyov)
// http://okmij.org/ftp/ML/generalization.html#levels
//
// This implementation follows the sound_eager algorithm.
//
// occursAdjustLevels reports whether the type-variable with the given id occurs within t.
//
// Unbound type-variables within t whose level is greater than level are lowered to level,
// so a type-variable bound to t cannot be generalized further out than any variable it links to.
func occursAdjustLevels(id, level int, t types.Type) bool {
	switch t := t.(type) {
	case *types.Var:
		if t.IsLinkVar() {
			return occursAdjustLevels(id, level, t.Link())
		}
		if t.Id() == id {
			return true
		}
		if t.Level() > level {
			t.SetLevel(level)
		}
		return false

	case *types.Arrow:
		return occursAdjustLevels(id, level, t.Param) || occursAdjustLevels(id, level, t.Result)

	default:
		return false
	}
}

func (ti *InferenceContext) unify(a, b types.Type) error {
	a, b = types.RealType(a), types.RealType(b)
	if a == b {
		return nil
	}

	// unify type variables:

	avar, _ := a.(*types.Var)
	bvar, _ := b.(*types.Var)
	switch {
	case avar != nil && bvar != nil && avar.Id() == bvar.Id():
		return nil
	case avar != nil:
		return bindVar(avar, b)
	case bvar != nil:
		return bindVar(bvar, a)
	}

	// unify types:

	switch a := a.(type) {
	case *types.Const:
		if b, ok := b.(*types.Const); ok && types.SameConst(a, b) {
			return nil
		}

	case *types.Arrow:
		if b, ok := b.(*types.Arrow); ok {
			if err := ti.unify(a.Param, b.Param); err != nil {
				return err
			}
			return ti.unify(a.Result, b.Result)
		}
	}

	return &TypeMismatchError{Expected: a, Actual: b}
}

func bindVar(tv *types.Var, t types.Type) error {
	if occursAdjustLevels(tv.Id(), tv.Level(), t) {
		return &RecursiveTypeError{Id: tv.Id(), Var: tv, Type: t}
	}
	tv.SetLink(t)
	return nil
}

// Unify makes a and b structurally equal by binding unbound type-variables within them.
//
// Unification is destructive: type-variables bound before a failure remain bound.
func Unify(a, b types.Type) error {
	var ti InferenceContext
	return ti.unify(a, b)
}
