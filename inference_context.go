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
	"github.com/wdamron/lambda/ast"
	"github.com/wdamron/lambda/internal/typeutil"
	"github.com/wdamron/lambda/types"
)

// InferenceContext is a reusable context for type inference.
//
// The context owns the state of an inference session: the allocator for fresh type-variables
// and the lookup used while instantiating type-schemes. Binding-levels are threaded through
// inference explicitly. The state is reset before each call, so every call is an independent
// session whose type-variable ids start at the environment's NextVarId.
//
// An inference context cannot be used concurrently.
type InferenceContext struct {
	annotate   bool
	needsReset bool

	varTracker typeutil.VarTracker
	instLookup map[int]*types.Var // instantiation lookup for quantified type-variables

	err     error
	invalid ast.Expr
}

// Create a new type-inference context. A context may be reused for inference.
func NewContext() *InferenceContext {
	return &InferenceContext{instLookup: make(map[int]*types.Var, 16)}
}

func (ti *InferenceContext) reset() {
	ti.clearInstLookup()
	ti.varTracker.Reset()
	ti.err, ti.invalid, ti.needsReset = nil, nil, false
}

// Reset the state of the context. The context will be reset automatically before inference.
func (ti *InferenceContext) Reset() {
	if !ti.needsReset {
		return
	}
	ti.reset()
}

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// VarCount returns the number of type-variables allocated during the most recent inference.
func (ti *InferenceContext) VarCount() int { return ti.varTracker.Count() }

// Infer the type of expr within env. The expression will not be annotated.
func (ti *InferenceContext) Infer(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	_, t, err := ti.inferRoot(expr, env)
	return t, err
}

// Infer the type of expr within env. The type-annotated copy of expr will be returned.
func (ti *InferenceContext) Annotate(expr ast.Expr, env *TypeEnv) (ast.Expr, types.Type, error) {
	if expr == nil {
		return nil, nil, ErrEmptyExpr
	}
	ti.annotate = true
	root, t, err := ti.inferRoot(ast.CopyExpr(expr), env)
	ti.annotate = false
	return root, t, err
}

// Infer the type of expr within env. Type-annotations will be added directly to expr.
// Every sub-expression of expr must be unannotated and have a unique address.
//
// If inference fails, annotations written before the failure remain on expr, so expr cannot be
// annotated again. Use Annotate to keep the caller's tree untouched.
func (ti *InferenceContext) AnnotateDirect(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	ti.annotate = true
	_, t, err := ti.inferRoot(expr, env)
	ti.annotate = false
	return t, err
}

func (ti *InferenceContext) inferRoot(root ast.Expr, env *TypeEnv) (ast.Expr, types.Type, error) {
	if ti.needsReset {
		ti.reset()
	}
	ti.needsReset = true
	if root == nil {
		ti.err = ErrEmptyExpr
		return nil, nil, ti.err
	}
	if ti.instLookup == nil {
		ti.instLookup = make(map[int]*types.Var, 16)
	}
	ti.varTracker.NextId = env.NextVarId()
	t, err := ti.infer(env, types.TopLevel, root)
	if err != nil {
		return root, nil, err
	}
	ti.varTracker.FlattenLinks()
	return root, types.RealType(t), nil
}

func (ti *InferenceContext) clearInstLookup() {
	for id := range ti.instLookup {
		delete(ti.instLookup, id)
	}
}

// fail records the expression which caused inference to fail.
func (ti *InferenceContext) fail(e ast.Expr, err error) (types.Type, error) {
	ti.invalid, ti.err = e, err
	return nil, err
}

func (ti *InferenceContext) annotated(e ast.Expr, t types.Type) (types.Type, error) {
	if ti.annotate && !e.SetType(t) {
		return ti.fail(e, ErrAnnotated)
	}
	return t, nil
}
