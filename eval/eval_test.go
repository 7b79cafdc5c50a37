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

package eval

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	c "github.com/wdamron/lambda/construct"
)

func TestEvalLiterals(t *testing.T) {
	env := NewStandardEnv()
	v, err := Eval(c.Int(7), env)
	require.NoError(t, err)
	require.Equal(t, Int(7), v)

	v, err = Eval(c.Bool(true), env)
	require.NoError(t, err)
	require.Equal(t, Bool(true), v)

	v, err = Eval(c.Unit(), env)
	require.NoError(t, err)
	require.Equal(t, Unit{}, v)
}

func TestEvalAdd(t *testing.T) {
	v, err := Eval(c.CallN(c.Var("add"), c.Int(10), c.Int(5)), NewStandardEnv())
	require.NoError(t, err)
	require.Equal(t, Int(15), v)
}

func TestEvalFactorial(t *testing.T) {
	fact := c.Let("fact",
		c.Func("n", c.CallN(c.Var("if"),
			c.CallN(c.Var("equals"), c.Var("n"), c.Int(0)),
			c.Int(1),
			c.CallN(c.Var("multiply"), c.Var("n"), c.Call(c.Var("fact"), c.CallN(c.Var("subtract"), c.Var("n"), c.Int(1)))))),
		c.Call(c.Var("fact"), c.Int(5)))
	v, err := Eval(fact, NewStandardEnv())
	require.NoError(t, err)
	require.Equal(t, Int(120), v)
}

func TestEvalCompose(t *testing.T) {
	expr := c.Let("compose", c.FuncN([]string{"f", "g", "x"}, c.Call(c.Var("f"), c.Call(c.Var("g"), c.Var("x")))),
		c.Let("double", c.Func("x", c.CallN(c.Var("add"), c.Var("x"), c.Var("x"))),
			c.Let("inc", c.Func("x", c.CallN(c.Var("add"), c.Var("x"), c.Int(1))),
				c.CallN(c.Var("compose"), c.Var("double"), c.Var("inc"), c.Int(20)))))
	v, err := Eval(expr, NewStandardEnv())
	require.NoError(t, err)
	require.Equal(t, Int(42), v)
}

func TestEvalNotCallable(t *testing.T) {
	_, err := Eval(c.Call(c.Int(5), c.Int(1)), NewStandardEnv())
	var notCallable *NotCallableError
	require.True(t, errors.As(err, &notCallable), "expected NotCallableError, got %v", err)
	require.Equal(t, Int(5), notCallable.Value)
}

func TestEvalNotCallableBeforeArgument(t *testing.T) {
	// The argument is never evaluated once the function value cannot be called.
	_, err := Eval(c.Call(c.Int(5), c.Var("missing")), NewStandardEnv())
	var notCallable *NotCallableError
	require.True(t, errors.As(err, &notCallable), "expected NotCallableError, got %v", err)

	// let loop = \x. loop x in 5 (loop 0)
	expr := c.Let("loop", c.Func("x", c.Call(c.Var("loop"), c.Var("x"))), c.Call(c.Int(5), c.Call(c.Var("loop"), c.Int(0))))
	_, err = Eval(expr, NewStandardEnv())
	require.True(t, errors.As(err, &notCallable), "expected NotCallableError, got %v", err)
}

func TestEvalUnboundVariable(t *testing.T) {
	_, err := Eval(c.Var("missing"), NewStandardEnv())
	var unbound *UnboundVariableError
	require.True(t, errors.As(err, &unbound))
	require.Equal(t, "missing", unbound.Name)
}

func TestEvalLetPlaceholder(t *testing.T) {
	_, err := Eval(c.Let("x", c.Var("x"), c.Var("x")), nil)
	var unbound *UnboundVariableError
	require.True(t, errors.As(err, &unbound))
	require.Equal(t, "x", unbound.Name)
}

func TestEvalClosureCapturesDefinitionEnv(t *testing.T) {
	// let x = 1 in let f = \y. x in let x = true in f unit
	expr := c.Let("x", c.Int(1),
		c.Let("f", c.Func("y", c.Var("x")),
			c.Let("x", c.Bool(true), c.Call(c.Var("f"), c.Unit()))))
	v, err := Eval(expr, nil)
	require.NoError(t, err)
	require.Equal(t, Int(1), v)
}

func TestEvalPrimitiveTypeError(t *testing.T) {
	_, err := Eval(c.CallN(c.Var("add"), c.Bool(true), c.Int(1)), NewStandardEnv())
	var primErr *PrimitiveTypeError
	require.True(t, errors.As(err, &primErr))
	require.Equal(t, "add", primErr.Op)
	require.Equal(t, "int", primErr.Expected)

	_, err = Eval(c.CallN(c.Var("if"), c.Int(0), c.Int(1), c.Int(2)), NewStandardEnv())
	require.True(t, errors.As(err, &primErr))
	require.Equal(t, "if", primErr.Op)
}

func TestEvalEquals(t *testing.T) {
	env := NewStandardEnv()
	cases := []struct {
		a, b Value
		want Bool
	}{
		{Int(1), Int(1), true},
		{Int(1), Int(2), false},
		{Bool(true), Bool(true), true},
		{Unit{}, Unit{}, true},
		{Int(1), Bool(true), false},
		{Unit{}, Int(0), false},
	}
	for _, tc := range cases {
		p, err := NewPrimitive(OpEquals).Apply(tc.a)
		require.NoError(t, err)
		v, err := p.(*Primitive).Apply(tc.b)
		require.NoError(t, err)
		require.Equal(t, tc.want, v, "equals %s %s", FormatValue(tc.a), FormatValue(tc.b))
	}

	// functions are never equal
	id := c.Func("x", c.Var("x"))
	v, err := Eval(c.Let("id", id, c.CallN(c.Var("equals"), c.Var("id"), c.Var("id"))), env)
	require.NoError(t, err)
	require.Equal(t, Bool(false), v)
}

func TestPrimitiveApplyDoesNotAlias(t *testing.T) {
	add1, err := NewPrimitive(OpAdd).Apply(Int(1))
	require.NoError(t, err)
	p := add1.(*Primitive)
	p.Args = append(make([]Value, 0, 4), p.Args...)

	a, err := p.Apply(Int(10))
	require.NoError(t, err)
	b, err := p.Apply(Int(20))
	require.NoError(t, err)
	require.Equal(t, Int(11), a)
	require.Equal(t, Int(21), b)
	require.Len(t, p.Args, 1)

	partial, err := NewPrimitive(OpIf).Apply(Bool(true))
	require.NoError(t, err)
	left, err := partial.(*Primitive).Apply(Int(1))
	require.NoError(t, err)
	right, err := partial.(*Primitive).Apply(Int(2))
	require.NoError(t, err)
	require.Equal(t, []Value{Bool(true), Int(1)}, left.(*Primitive).Args)
	require.Equal(t, []Value{Bool(true), Int(2)}, right.(*Primitive).Args)
}

func TestEvalPartialIfIsStrict(t *testing.T) {
	// let sel = if true in sel 1 (5 1)
	expr := c.Let("sel", c.Call(c.Var("if"), c.Bool(true)), c.CallN(c.Var("sel"), c.Int(1), c.Call(c.Int(5), c.Int(1))))
	_, err := Eval(expr, NewStandardEnv())
	var notCallable *NotCallableError
	require.True(t, errors.As(err, &notCallable))
}

func TestEvalSaturatedIfWithExtraArgs(t *testing.T) {
	// if false succ (add 1) 41
	expr := c.CallN(c.Var("if"), c.Bool(false), c.Var("succ"), c.Call(c.Var("add"), c.Int(1)), c.Int(41))
	v, err := Eval(expr, NewStandardEnv())
	require.NoError(t, err)
	require.Equal(t, Int(42), v)
}

func TestEvalResourceLimit(t *testing.T) {
	// let loop = \x. loop x in loop unit
	expr := c.Let("loop", c.Func("x", c.Call(c.Var("loop"), c.Var("x"))), c.Call(c.Var("loop"), c.Unit()))
	ev := Evaluator{MaxDepth: 256}
	_, err := ev.Eval(expr, nil)
	var resErr *ResourceError
	require.True(t, errors.As(err, &resErr))
	require.Equal(t, 256, resErr.Limit)

	// the evaluator remains usable after a failure
	v, err := ev.Eval(c.Int(3), nil)
	require.NoError(t, err)
	require.Equal(t, Int(3), v)
}

func TestFormatValue(t *testing.T) {
	add1, _ := NewPrimitive(OpAdd).Apply(Int(1))
	cases := []struct {
		v    Value
		want string
	}{
		{Unit{}, "()"},
		{Int(-3), "-3"},
		{Bool(false), "false"},
		{&Closure{Param: "x"}, `<closure \x>`},
		{NewPrimitive(OpSucc), "<primitive succ/1>"},
		{add1, "<primitive add/2 [1 applied]>"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FormatValue(tc.v))
	}
}

func TestEnvShadowing(t *testing.T) {
	env := NewStandardEnv().Extend("x", Int(1))
	inner := env.Extend("x", Int(2))
	v, ok := inner.Lookup("x")
	require.True(t, ok)
	require.Equal(t, Int(2), v)
	v, ok = env.Lookup("x")
	require.True(t, ok)
	require.Equal(t, Int(1), v)
	require.Equal(t, "x", inner.Names()[0])
}
