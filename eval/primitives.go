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

// Primitive operations of the standard environment.
var (
	OpAdd      = &Op{Name: "add", Arity: 2, Exec: intBinary("add", func(a, b Int) Int { return a + b })}
	OpSubtract = &Op{Name: "subtract", Arity: 2, Exec: intBinary("subtract", func(a, b Int) Int { return a - b })}
	OpMultiply = &Op{Name: "multiply", Arity: 2, Exec: intBinary("multiply", func(a, b Int) Int { return a * b })}
	OpEquals   = &Op{Name: "equals", Arity: 2, Exec: execEquals}
	OpIf       = &Op{Name: "if", Arity: 3, Exec: execIf}
	OpSucc     = &Op{Name: "succ", Arity: 1, Exec: execSucc}
)

// NewPrimitive returns an unapplied primitive for op.
func NewPrimitive(op *Op) *Primitive { return &Primitive{Op: op} }

// Apply the primitive to one more argument.
//
// Below the arity of the operation a new primitive carrying the accumulated arguments is returned;
// at its arity the operation is executed.
func (p *Primitive) Apply(arg Value) (Value, error) {
	args := make([]Value, len(p.Args)+1)
	copy(args, p.Args)
	args[len(p.Args)] = arg
	if len(args) < p.Op.Arity {
		return &Primitive{Op: p.Op, Args: args}, nil
	}
	return p.Op.Exec(args)
}

// NewStandardEnv creates a runtime environment containing the primitive functions
// add, subtract, multiply, equals, if and succ.
func NewStandardEnv() *Env {
	var env *Env
	for _, op := range []*Op{OpAdd, OpSubtract, OpMultiply, OpEquals, OpIf, OpSucc} {
		env = env.Extend(op.Name, NewPrimitive(op))
	}
	return env
}

func intBinary(name string, f func(a, b Int) Int) func(args []Value) (Value, error) {
	return func(args []Value) (Value, error) {
		a, ok := args[0].(Int)
		if !ok {
			return nil, &PrimitiveTypeError{Op: name, Expected: "int", Actual: args[0]}
		}
		b, ok := args[1].(Int)
		if !ok {
			return nil, &PrimitiveTypeError{Op: name, Expected: "int", Actual: args[1]}
		}
		return f(a, b), nil
	}
}

func execSucc(args []Value) (Value, error) {
	n, ok := args[0].(Int)
	if !ok {
		return nil, &PrimitiveTypeError{Op: "succ", Expected: "int", Actual: args[0]}
	}
	return n + 1, nil
}

// Values of different kinds are never equal. Functions are never equal.
func execEquals(args []Value) (Value, error) {
	switch a := args[0].(type) {
	case Int:
		b, ok := args[1].(Int)
		return Bool(ok && a == b), nil
	case Bool:
		b, ok := args[1].(Bool)
		return Bool(ok && a == b), nil
	case Unit:
		_, ok := args[1].(Unit)
		return Bool(ok), nil
	}
	return Bool(false), nil
}

// Both branches have already been evaluated; if only selects between them.
func execIf(args []Value) (Value, error) {
	cond, ok := args[0].(Bool)
	if !ok {
		return nil, &PrimitiveTypeError{Op: "if", Expected: "bool", Actual: args[0]}
	}
	if cond {
		return args[1], nil
	}
	return args[2], nil
}
