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

// Package interp runs evaluation units: each unit is parsed, type-checked and evaluated
// against persistent base environments.
package interp

import (
	"log/slog"
	"time"

	"github.com/wdamron/lambda"
	"github.com/wdamron/lambda/ast"
	"github.com/wdamron/lambda/eval"
	"github.com/wdamron/lambda/parser"
	"github.com/wdamron/lambda/types"
)

// Interpreter runs evaluation units against a type-environment and a runtime environment.
//
// Units never modify the environments, so a failed unit has no effect on later units.
type Interpreter struct {
	TypeEnv *lambda.TypeEnv
	Env     *eval.Env
	// Infer enables type-checking before evaluation.
	Infer bool
	// MaxDepth limits the nesting depth of evaluation (see eval.Evaluator).
	MaxDepth int
	Logger   *slog.Logger
}

// New creates an interpreter with the standard environments and type-checking enabled.
func New() *Interpreter {
	return &Interpreter{
		TypeEnv: lambda.NewStandardTypeEnv(),
		Env:     eval.NewStandardEnv(),
		Infer:   true,
	}
}

// Result is the outcome of a successful unit.
type Result struct {
	Expr ast.Expr
	// Type is nil when type-checking is disabled.
	Type  types.Type
	Value eval.Value
}

// String formats the result as `value : type`.
func (r *Result) String() string {
	v := eval.FormatValue(r.Value)
	if r.Type == nil {
		return v
	}
	return v + " : " + types.TypeString(r.Type)
}

func (ip *Interpreter) logger() *slog.Logger {
	if ip.Logger != nil {
		return ip.Logger
	}
	return slog.Default()
}

// Exec parses, type-checks and evaluates a single unit of source.
func (ip *Interpreter) Exec(src string) (*Result, error) {
	expr, err := parser.Parse(src)
	if err != nil {
		ip.logger().Debug("parse failed", "error", err)
		return nil, err
	}
	return ip.exec(expr, true)
}

// ExecExpr type-checks and evaluates expr. The expression is not annotated; the returned
// result holds an annotated copy.
func (ip *Interpreter) ExecExpr(expr ast.Expr) (*Result, error) {
	return ip.exec(expr, false)
}

func (ip *Interpreter) exec(expr ast.Expr, owned bool) (*Result, error) {
	start := time.Now()
	res := &Result{Expr: expr}
	if ip.Infer {
		ti := lambda.NewContext()
		var err error
		if owned {
			res.Type, err = ti.AnnotateDirect(expr, ip.TypeEnv)
		} else {
			res.Expr, res.Type, err = ti.Annotate(expr, ip.TypeEnv)
		}
		if err != nil {
			ip.logger().Debug("type-check failed", "error", err, "expr", exprAttr(ti.InvalidExpr()))
			return nil, err
		}
		ip.logger().Debug("type-checked", "type", types.TypeString(res.Type), "vars", ti.VarCount())
	} else if unbound := ip.unboundNames(expr); len(unbound) > 0 {
		ip.logger().Warn("unbound names", "names", unbound)
	}
	ev := eval.Evaluator{MaxDepth: ip.MaxDepth}
	v, err := ev.Eval(res.Expr, ip.Env)
	if err != nil {
		ip.logger().Debug("evaluation failed", "error", err)
		return nil, err
	}
	res.Value = v
	ip.logger().Debug("evaluated", "value", eval.FormatValue(v), "duration", time.Since(start))
	return res, nil
}

// TypeOf parses src and infers its type without evaluating it.
func (ip *Interpreter) TypeOf(src string) (types.Type, error) {
	expr, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return lambda.NewContext().Infer(expr, ip.TypeEnv)
}

// unboundNames lists the free variables of expr which have no binding in the runtime environment.
func (ip *Interpreter) unboundNames(expr ast.Expr) []string {
	var unbound []string
	for _, name := range ast.FreeVars(expr) {
		if _, ok := ip.Env.Lookup(name); !ok {
			unbound = append(unbound, name)
		}
	}
	return unbound
}

func exprAttr(e ast.Expr) string {
	if e == nil {
		return ""
	}
	return ast.ExprString(e)
}
