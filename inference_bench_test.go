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

package lambda_test

import (
	"testing"

	. "github.com/wdamron/lambda"
	. "github.com/wdamron/lambda/construct"

	"github.com/wdamron/lambda/ast"
	"github.com/wdamron/lambda/eval"
	"github.com/wdamron/lambda/types"
)

func factorial() ast.Expr {
	return Let("fact",
		Func("n", CallN(Var("if"),
			CallN(Var("equals"), Var("n"), Int(0)),
			Int(1),
			CallN(Var("multiply"), Var("n"), Call(Var("fact"), CallN(Var("subtract"), Var("n"), Int(1)))))),
		Call(Var("fact"), Int(10)))
}

func BenchmarkRecursiveLet(b *testing.B) {
	env := NewStandardTypeEnv()
	ctx := NewContext()
	expr := factorial()

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ty, err := ctx.Infer(expr, env)
		if err != nil || ty == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNestedLetPolymorphism(b *testing.B) {
	env := NewStandardTypeEnv()
	ctx := NewContext()

	id := Var("id")
	twice := Var("twice")
	compose := Var("compose")

	expr := Let("id", Func("x", Var("x")),
		Let("twice", FuncN([]string{"f", "x"}, Call(Var("f"), Call(Var("f"), Var("x")))),
			Let("compose", FuncN([]string{"f", "g", "x"}, Call(Var("f"), Call(Var("g"), Var("x")))),
				CallN(Var("if"),
					CallN(id, CallN(twice, id, Bool(true))),
					CallN(compose, Var("succ"), CallN(twice, CallN(id, Var("succ"))), Int(1)),
					CallN(twice, CallN(compose, id, Var("succ")), Int(2))))))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ty, err := ctx.Infer(expr, env)
		if err != nil || ty != types.Int {
			b.Fatal(err, ty)
		}
	}
}

func BenchmarkAnnotate(b *testing.B) {
	env := NewStandardTypeEnv()
	ctx := NewContext()
	expr := factorial()

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		_, ty, err := ctx.Annotate(expr, env)
		if err != nil || ty == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvalFactorial(b *testing.B) {
	env := eval.NewStandardEnv()
	expr := factorial()
	var ev eval.Evaluator

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		v, err := ev.Eval(expr, env)
		if err != nil || v != eval.Int(3628800) {
			b.Fatal(err, v)
		}
	}
}
