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
	"strconv"

	"github.com/wdamron/lambda/types"
)

var (
	// ErrEmptyExpr is returned when inference is requested for a nil expression.
	ErrEmptyExpr = errors.New("Empty expression")
	// ErrAnnotated is returned when an expression which already carries an inferred type is annotated again.
	ErrAnnotated = errors.New("Expression is already annotated")
)

// UnboundVariableError is returned when a variable is not found in the type-environment.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string { return "Variable " + e.Name + " not found" }

// TypeMismatchError is returned when two types of incompatible shapes are unified.
type TypeMismatchError struct {
	Expected types.Type
	Actual   types.Type
}

func (e *TypeMismatchError) Error() string {
	names := types.TypeStrings(e.Expected, e.Actual)
	return "Failed to unify " + names[0] + " with " + names[1]
}

// RecursiveTypeError is returned when a type-variable would be bound to a type containing itself.
type RecursiveTypeError struct {
	Id   int
	Var  *types.Var
	Type types.Type
}

func (e *RecursiveTypeError) Error() string {
	if e.Var == nil || e.Type == nil {
		return "Implicitly recursive type for type-variable " + strconv.Itoa(e.Id)
	}
	names := types.TypeStrings(e.Var, e.Type)
	return "Implicitly recursive type: " + names[0] + " occurs in " + names[1]
}
