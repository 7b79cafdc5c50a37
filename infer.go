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
	"errors"

	"github.com/wdamron/lambda/ast"
	"github.com/wdamron/lambda/types"
)

func (ti *InferenceContext) infer(env *TypeEnv, level int, e ast.Expr) (types.Type, error) {
	switch e := e.(type) {
	case *ast.Unit:
		return ti.annotated(e, types.Unit)

	case *ast.Int:
		return ti.annotated(e, types.Int)

	case *ast.Bool:
		return ti.annotated(e, types.Bool)

	case *ast.Var:
		s, ok := env.Lookup(e.Name)
		if !ok {
			return ti.fail(e, &UnboundVariableError{Name: e.Name})
		}
		return ti.annotated(e, ti.instantiate(level, s))

	case *ast.Func:
		// Parameters are monomorphic within the function body:
		tv := ti.varTracker.New(level)
		ret, err := ti.infer(env.Extend(e.Param, DontGeneralize(tv)), level, e.Body)
		if err != nil {
			return nil, err
		}
		return ti.annotated(e, &types.Arrow{Param: tv, Result: ret})

	case *ast.Call:
		ft, err := ti.infer(env, level, e.Func)
		if err != nil {
			return nil, err
		}
		at, err := ti.infer(env, level, e.Arg)
		if err != nil {
			return nil, err
		}
		ret := ti.varTracker.New(level)
		if err := ti.unify(ft, &types.Arrow{Param: at, Result: ret}); err != nil {
			return ti.fail(e, err)
		}
		return ti.annotated(e, ret)

	case *ast.Let:
		// Allow self-references within the bound value. The placeholder belongs to the inner level,
		// so the value's type-variables are only lowered when they escape to an enclosing scope:
		tv := ti.varTracker.New(level + 1)
		t, err := ti.infer(env.Extend(e.Var, DontGeneralize(tv)), level+1, e.Value)
		if err != nil {
			return nil, err
		}
		if err := ti.unify(tv, t); err != nil {
			return ti.fail(e, err)
		}
		t, err = ti.infer(env.Extend(e.Var, generalize(level, tv)), level, e.Body)
		if err != nil {
			return nil, err
		}
		return ti.annotated(e, t)
	}

	var exprName string
	if e != nil {
		exprName = "(" + e.ExprName() + ")"
	} else {
		exprName = "(nil)"
	}
	return ti.fail(e, errors.New("Unhandled expression "+exprName))
}
