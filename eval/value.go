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
	"strings"

	"github.com/wdamron/lambda/ast"
)

// Value is a runtime value produced by evaluation.
type Value interface {
	// Name of the kind of the value.
	ValueName() string
}

var (
	_ Value = Unit{}
	_ Value = Int(0)
	_ Value = Bool(false)
	_ Value = (*Closure)(nil)
	_ Value = (*Primitive)(nil)
)

// Unit value: `()`
type Unit struct{}

func (Unit) ValueName() string { return "unit" }

// Integer value
type Int int64

func (Int) ValueName() string { return "int" }

// Boolean value
type Bool bool

func (Bool) ValueName() string { return "bool" }

// Closure is a function value which captures the environment of its definition.
type Closure struct {
	Param string
	Body  ast.Expr
	Env   *Env
}

func (*Closure) ValueName() string { return "function" }

// Primitive is a built-in operation, possibly partially applied.
//
// Args holds the values applied so far; len(Args) is always less than the arity of Op.
// Applying a primitive never modifies Args.
type Primitive struct {
	Op   *Op
	Args []Value
}

func (*Primitive) ValueName() string { return "function" }

// Op is a built-in operation of fixed arity.
type Op struct {
	Name  string
	Arity int
	// Exec runs the operation when exactly Arity arguments have been applied.
	Exec func(args []Value) (Value, error)
}

// FormatValue returns a printable representation of v.
func FormatValue(v Value) string {
	switch v := v.(type) {
	case Unit:
		return "()"
	case Int:
		return strconv.FormatInt(int64(v), 10)
	case Bool:
		if v {
			return "true"
		}
		return "false"
	case *Closure:
		return "<closure \\" + v.Param + ">"
	case *Primitive:
		var sb strings.Builder
		sb.WriteString("<primitive ")
		sb.WriteString(v.Op.Name)
		sb.WriteByte('/')
		sb.WriteString(strconv.Itoa(v.Op.Arity))
		if len(v.Args) > 0 {
			sb.WriteString(" [")
			sb.WriteString(strconv.Itoa(len(v.Args)))
			sb.WriteString(" applied]")
		}
		sb.WriteByte('>')
		return sb.String()
	case nil:
		return "<nil>"
	}
	return "<" + v.ValueName() + ">"
}
