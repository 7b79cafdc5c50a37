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

// Package construct provides terse constructors for expressions and types.
package construct

import (
	"github.com/wdamron/lambda/ast"
	"github.com/wdamron/lambda/types"
)

// Types

// Create a new type-variable with the given id and binding-level.
func TVar(id, level int) *types.Var {
	return types.NewVar(id, level)
}

// Function type: `int -> int`
func TArrow(param, result types.Type) *types.Arrow {
	return types.NewArrow(param, result)
}

// Curried function type: `int -> int -> int`
func TArrows(first types.Type, rest ...types.Type) types.Type {
	return types.NewCurried(first, rest...)
}

// Expressions

// Unit literal: `unit`
func Unit() *ast.Unit { return &ast.Unit{} }

// Integer literal: `42`
func Int(value int64) *ast.Int { return &ast.Int{Value: value} }

// Boolean literal: `true`
func Bool(value bool) *ast.Bool { return &ast.Bool{Value: value} }

// Variable: `x`
func Var(name string) *ast.Var { return &ast.Var{Name: name} }

// Function abstraction: `\x. body`
func Func(param string, body ast.Expr) *ast.Func {
	return &ast.Func{Param: param, Body: body}
}

// Curried function abstraction: `\x. \y. body`
func FuncN(params []string, body ast.Expr) ast.Expr {
	for i := len(params) - 1; i >= 0; i-- {
		body = &ast.Func{Param: params[i], Body: body}
	}
	return body
}

// Function application: `f x`
func Call(fn, arg ast.Expr) *ast.Call {
	return &ast.Call{Func: fn, Arg: arg}
}

// Curried function application: `f x y`
func CallN(fn ast.Expr, args ...ast.Expr) ast.Expr {
	for _, arg := range args {
		fn = &ast.Call{Func: fn, Arg: arg}
	}
	return fn
}

// Let binding: `let x = value in body`
func Let(name string, value, body ast.Expr) *ast.Let {
	return &ast.Let{Var: name, Value: value, Body: body}
}
