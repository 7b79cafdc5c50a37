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
	"strconv"
)

// UnboundVariableError is returned when a variable has no value in the runtime environment.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string { return "Variable " + e.Name + " not found" }

// NotCallableError is returned when a value which is not a function is applied to an argument.
type NotCallableError struct {
	Value Value
}

func (e *NotCallableError) Error() string {
	return "Value " + FormatValue(e.Value) + " is not callable"
}

// PrimitiveTypeError is returned when a primitive operation receives an operand of the wrong kind.
type PrimitiveTypeError struct {
	Op       string
	Expected string
	Actual   Value
}

func (e *PrimitiveTypeError) Error() string {
	msg := "Primitive " + e.Op + " expected " + e.Expected
	if e.Actual != nil {
		msg += ", got " + FormatValue(e.Actual)
	}
	return msg
}

// ResourceError is returned when evaluation exceeds the maximum nesting depth.
type ResourceError struct {
	Limit int
}

func (e *ResourceError) Error() string {
	return "Maximum evaluation depth exceeded (" + strconv.Itoa(e.Limit) + ")"
}
