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

// Package eval implements a tree-walking evaluator for expressions.
//
// Evaluation is call-by-value: the function of an application is evaluated before its argument,
// and both are evaluated before the function is applied.
package eval

import (
	"errors"

	"github.com/wdamron/lambda/ast"
)

// DefaultMaxDepth is the maximum nesting depth of evaluation used when an Evaluator does not specify one.
const DefaultMaxDepth = 1 << 16

// Evaluator evaluates expressions. An evaluator may be reused, but cannot be used concurrently.
type Evaluator struct {
	// MaxDepth limits the nesting depth of evaluation. Unbounded recursion fails with a ResourceError
	// once the limit is reached. If MaxDepth is not positive, DefaultMaxDepth is used.
	MaxDepth int

	depth int
}

// Eval evaluates expr within env using a default evaluator.
func Eval(expr ast.Expr, env *Env) (Value, error) {
	var ev Evaluator
	return ev.Eval(expr, env)
}

// Eval evaluates expr within env.
func (ev *Evaluator) Eval(expr ast.Expr, env *Env) (Value, error) {
	if expr == nil {
		return nil, errors.New("Empty expression")
	}
	ev.depth = 0
	return ev.eval(env, expr)
}

func (ev *Evaluator) limit() int {
	if ev.MaxDepth > 0 {
		return ev.MaxDepth
	}
	return DefaultMaxDepth
}

func (ev *Evaluator) eval(env *Env, e ast.Expr) (Value, error) {
	if ev.depth >= ev.limit() {
		return nil, &ResourceError{Limit: ev.limit()}
	}
	ev.depth++
	defer func() { ev.depth-- }()

	switch e := e.(type) {
	case *ast.Unit:
		return Unit{}, nil

	case *ast.Int:
		return Int(e.Value), nil

	case *ast.Bool:
		return Bool(e.Value), nil

	case *ast.Var:
		v, ok := env.Lookup(e.Name)
		if !ok {
			return nil, &UnboundVariableError{Name: e.Name}
		}
		return v, nil

	case *ast.Func:
		return &Closure{Param: e.Param, Body: e.Body, Env: env}, nil

	case *ast.Call:
		return ev.evalCall(env, e)

	case *ast.Let:
		// The value may refer to itself through the binding once it has been computed:
		inner, c := env.extendPlaceholder(e.Var)
		v, err := ev.eval(inner, e.Value)
		if err != nil {
			return nil, err
		}
		c.value = v
		return ev.eval(inner, e.Body)
	}

	var exprName string
	if e != nil {
		exprName = "(" + e.ExprName() + ")"
	} else {
		exprName = "(nil)"
	}
	return nil, errors.New("Unhandled expression " + exprName)
}

// evalCall evaluates an application spine `f a1 ... an` from left to right, applying each argument
// as soon as it has been evaluated. This matches the nested evaluation of single applications.
//
// A saturated application of the unapplied if primitive evaluates only the selected branch;
// partial applications of if remain strict in all of their arguments.
func (ev *Evaluator) evalCall(env *Env, e *ast.Call) (Value, error) {
	head, args := callSpine(e)
	fn, err := ev.eval(env, head)
	if err != nil {
		return nil, err
	}
	// Only the syntactically saturated form short-circuits; `if c t` applied later stays strict.
	if p, ok := fn.(*Primitive); ok && p.Op == OpIf && len(p.Args) == 0 && len(args) >= 3 {
		cond, err := ev.eval(env, args[0])
		if err != nil {
			return nil, err
		}
		b, ok := cond.(Bool)
		if !ok {
			return nil, &PrimitiveTypeError{Op: "if", Expected: "bool", Actual: cond}
		}
		branch := args[2]
		if b {
			branch = args[1]
		}
		if fn, err = ev.eval(env, branch); err != nil {
			return nil, err
		}
		args = args[3:]
	}
	for _, argExpr := range args {
		switch fn.(type) {
		case *Closure, *Primitive:
		default:
			return nil, &NotCallableError{Value: fn}
		}
		arg, err := ev.eval(env, argExpr)
		if err != nil {
			return nil, err
		}
		if fn, err = ev.apply(fn, arg); err != nil {
			return nil, err
		}
	}
	return fn, nil
}

// callSpine flattens nested applications into the applied head and its arguments, in order.
func callSpine(e *ast.Call) (ast.Expr, []ast.Expr) {
	n := 1
	head := e.Func
	for c, ok := head.(*ast.Call); ok; c, ok = head.(*ast.Call) {
		head = c.Func
		n++
	}
	args := make([]ast.Expr, n)
	var cur ast.Expr = e
	for i := n - 1; i >= 0; i-- {
		c := cur.(*ast.Call)
		args[i] = c.Arg
		cur = c.Func
	}
	return head, args
}

func (ev *Evaluator) apply(fn, arg Value) (Value, error) {
	switch fn := fn.(type) {
	case *Closure:
		return ev.eval(fn.Env.Extend(fn.Param, arg), fn.Body)
	case *Primitive:
		return fn.Apply(arg)
	}
	return nil, &NotCallableError{Value: fn}
}
