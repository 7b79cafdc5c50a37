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

package ast

import (
	"github.com/wdamron/lambda/types"
)

type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	// Type returns an inferred type of an expression. Expression types are only available after type-inference.
	Type() types.Type
	// SetType annotates the expression with an inferred type. An expression may only be annotated once;
	// SetType returns false (and leaves the existing annotation in place) if the expression is already annotated.
	SetType(t types.Type) bool
}

var (
	_ Expr = (*Unit)(nil)
	_ Expr = (*Int)(nil)
	_ Expr = (*Bool)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Func)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Let)(nil)
)

// write-once type annotation shared by all expressions
type annotation struct {
	inferred types.Type
}

func (a *annotation) Type() types.Type {
	if a.inferred == nil {
		return nil
	}
	return types.RealType(a.inferred)
}

func (a *annotation) SetType(t types.Type) bool {
	if a.inferred != nil {
		return false
	}
	a.inferred = t
	return true
}

// Unit literal: `unit`
type Unit struct {
	annotation
}

func (e *Unit) ExprName() string { return "Unit" }

// Integer literal: `42`
type Int struct {
	Value int64
	annotation
}

func (e *Int) ExprName() string { return "Int" }

// Boolean literal: `true`
type Bool struct {
	Value bool
	annotation
}

func (e *Bool) ExprName() string { return "Bool" }

// Variable: `x`
type Var struct {
	Name string
	annotation
}

func (e *Var) ExprName() string { return "Var" }

// Function abstraction: `\x. body`
type Func struct {
	Param string
	Body  Expr
	annotation
}

func (e *Func) ExprName() string { return "Func" }

// ParamType returns the inferred type of the parameter, if available.
func (e *Func) ParamType() types.Type {
	if arrow, ok := e.Type().(*types.Arrow); ok {
		return types.RealType(arrow.Param)
	}
	return nil
}

// Function application: `f x`
type Call struct {
	Func Expr
	Arg  Expr
	annotation
}

func (e *Call) ExprName() string { return "Call" }

// Let binding: `let x = value in body`
//
// The bound variable is in scope within its own value, allowing self-recursive functions.
type Let struct {
	Var   string
	Value Expr
	Body  Expr
	annotation
}

func (e *Let) ExprName() string { return "Let" }
