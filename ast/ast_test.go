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

package ast_test

import (
	"testing"

	"github.com/wdamron/lambda/ast"
	. "github.com/wdamron/lambda/construct"
	"github.com/wdamron/lambda/types"
)

func TestExprString(t *testing.T) {
	cases := []struct {
		expr     ast.Expr
		expected string
	}{
		{Unit(), "unit"},
		{Int(-4), "-4"},
		{Bool(true), "true"},
		{Func("x", Var("x")), `\x. x`},
		{CallN(Var("f"), Var("x"), Var("y")), "f x y"},
		{Call(Var("f"), Call(Var("g"), Var("x"))), "f (g x)"},
		{Call(Func("x", Var("x")), Int(1)), `(\x. x) 1`},
		{Call(Var("f"), Func("x", Var("x"))), `f (\x. x)`},
		{Let("x", Int(1), Call(Var("succ"), Var("x"))), "let x = 1 in succ x"},
		{Call(Var("f"), Let("x", Int(1), Var("x"))), "f (let x = 1 in x)"},
		{nil, "<nil>"},
	}
	for _, c := range cases {
		if s := ast.ExprString(c.expr); s != c.expected {
			t.Fatalf("expected %s, found %s", c.expected, s)
		}
	}
}

func TestSetTypeIsWriteOnce(t *testing.T) {
	e := Var("x")
	if e.Type() != nil {
		t.Fatalf("expected no annotation")
	}
	if !e.SetType(types.Int) {
		t.Fatalf("expected first annotation to succeed")
	}
	if e.SetType(types.Bool) {
		t.Fatalf("expected second annotation to fail")
	}
	if e.Type() != types.Int {
		t.Fatalf("expected the first annotation to be kept")
	}
}

func TestTypeFollowsLinks(t *testing.T) {
	tv := TVar(0, types.TopLevel)
	f := Func("x", Var("x"))
	f.SetType(TArrow(tv, tv))
	tv.SetLink(types.Int)
	if f.ParamType() != types.Int {
		t.Fatalf("expected linked parameter type")
	}

	e := Int(1)
	v := TVar(1, types.TopLevel)
	e.SetType(v)
	v.SetLink(types.Int)
	if e.Type() != types.Int {
		t.Fatalf("expected dereferenced annotation")
	}
}

func TestCopyExpr(t *testing.T) {
	orig := Let("id", Func("x", Var("x")), Call(Var("id"), Int(1)))
	orig.SetType(types.Int)
	cp := ast.CopyExpr(orig)
	if cp == ast.Expr(orig) {
		t.Fatalf("expected a new expression")
	}
	if cp.Type() != nil {
		t.Fatalf("expected annotations to be dropped")
	}
	if ast.ExprString(cp) != ast.ExprString(orig) {
		t.Fatalf("expected equal expressions: %s, %s", ast.ExprString(cp), ast.ExprString(orig))
	}
	if cp.(*ast.Let).Value == orig.Value {
		t.Fatalf("expected a deep copy")
	}
}

func TestWalkExpr(t *testing.T) {
	expr := Let("id", Func("x", Var("x")), Call(Var("id"), Int(1)))
	var names []string
	ast.WalkExpr(expr, func(e ast.Expr) { names = append(names, e.ExprName()) })
	expected := []string{"Let", "Func", "Var", "Call", "Var", "Int"}
	if len(names) != len(expected) {
		t.Fatalf("expected %v, found %v", expected, names)
	}
	for i := range names {
		if names[i] != expected[i] {
			t.Fatalf("expected %v, found %v", expected, names)
		}
	}
}

func TestFreeVars(t *testing.T) {
	// let f = \x. add x y in f (g y) f
	expr := Let("f", Func("x", CallN(Var("add"), Var("x"), Var("y"))),
		CallN(Var("f"), Call(Var("g"), Var("y")), Var("f")))
	free := ast.FreeVars(expr)
	expected := []string{"add", "y", "g"}
	if len(free) != len(expected) {
		t.Fatalf("expected %v, found %v", expected, free)
	}
	for i := range free {
		if free[i] != expected[i] {
			t.Fatalf("expected %v, found %v", expected, free)
		}
	}
}
