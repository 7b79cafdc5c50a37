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
	"github.com/wdamron/lambda/types"
)

// Generalize all unbound type-variables in t whose binding-level is greater than level.
//
// The body of the returned scheme is t itself; the type graph is shared, not copied.
func Generalize(level int, t types.Type) *types.Scheme { return generalize(level, t) }

// DontGeneralize wraps t in a monomorphic scheme.
func DontGeneralize(t types.Type) *types.Scheme { return types.Monomorphic(t) }

func generalize(level int, t types.Type) *types.Scheme {
	vars := types.NewVarSetBuilder()
	visitTypeVars(level, t, vars)
	return &types.Scheme{Vars: vars.Build(), Type: t}
}

func visitTypeVars(level int, t types.Type, vars types.VarSetBuilder) {
	switch t := t.(type) {
	case *types.Var:
		switch {
		case t.IsLinkVar():
			visitTypeVars(level, t.Link(), vars)
		case t.Level() > level:
			vars.Add(t.Id())
		}

	case *types.Arrow:
		visitTypeVars(level, t.Param, vars)
		visitTypeVars(level, t.Result, vars)
	}
}
