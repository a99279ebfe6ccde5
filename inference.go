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

package plambda

import (
	"errors"

	"github.com/wdamron/plambda/ast"
	"github.com/wdamron/plambda/internal/astutil"
	"github.com/wdamron/plambda/internal/typeutil"
	"github.com/wdamron/plambda/types"
)

// InferenceContext is a re-usable context for type inference.
//
// A context cannot be used concurrently.
type InferenceContext struct {
	common     typeutil.CommonContext
	err        error
	invalid    ast.Term
	needsReset bool
}

// Result of inference: the inferred type and the substitution under which it was inferred.
type Result struct {
	Type  types.Type
	Subst types.Subst
	// Types of the free variables of the term which were not bound by the environment, under Subst
	Free TypeEnv
}

// Create a new type-inference context. A context may be re-used across calls of InferType.
func NewContext() *InferenceContext {
	return &InferenceContext{}
}

// Set the work budget for each unification. A non-positive budget selects the default (1000).
func (ti *InferenceContext) SetUnifyFuel(fuel int) { ti.common.UnifyFuel = fuel }

// Infer the type of term within env.
//
// Each variable which occurs free in term is first bound to a fresh type-variable, so open terms can
// be inferred. Bindings in env take precedence over the fresh variables. Type-variables are named
// `T0`, `T1`, ... from the start of each call.
func (ti *InferenceContext) InferType(term ast.Term, env TypeEnv) (Result, error) {
	if term == nil {
		return Result{}, errors.New("Empty term")
	}
	if ti.needsReset {
		ti.reset()
	}
	ti.needsReset = true

	seeded := NewTypeEnv()
	for _, name := range ast.FreeVars(term).Names() {
		seeded = seeded.Declare(name, ti.common.VarTracker.New())
	}
	t, subst, err := ti.infer(seeded.Merge(env), term)
	if err != nil {
		return Result{}, err
	}
	free := NewTypeEnv()
	seeded.Range(func(name string, seed types.Type) bool {
		if env.Lookup(name) == nil {
			free = free.Declare(name, subst.Apply(seed))
		}
		return true
	})
	return Result{Type: subst.Apply(t), Subst: subst, Free: free}, nil
}

// Infer the type of term within env. See InferType.
func (ti *InferenceContext) Infer(term ast.Term, env TypeEnv) (types.Type, error) {
	res, err := ti.InferType(term, env)
	return res.Type, err
}

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the sub-term which caused inference to fail.
func (ti *InferenceContext) InvalidTerm() ast.Term { return ti.invalid }

// Reset the state of the context. The context will be reset automatically between calls of InferType.
func (ti *InferenceContext) Reset() {
	if !ti.needsReset {
		return
	}
	ti.reset()
}

func (ti *InferenceContext) reset() {
	ti.common.Reset()
	ti.err, ti.invalid, ti.needsReset = nil, nil, false
}

// Instantiate strips the leading quantifiers of a type scheme, replacing each quantified variable
// with a fresh type-variable from the context.
func (ti *InferenceContext) Instantiate(t types.Type) types.Type { return ti.common.Instantiate(t) }

// Unify a and b under subst, within the context's unification budget.
func (ti *InferenceContext) Unify(a, b types.Type, subst types.Subst) (types.Subst, error) {
	subst, err := ti.common.Unify(a, b, subst)
	if err != nil {
		return subst, unifyError(err, nil)
	}
	return subst, nil
}

// Infer the type of term within env using a new context.
func InferType(term ast.Term, env TypeEnv) (Result, error) {
	return NewContext().InferType(term, env)
}

// Unify a and b under subst with the default unification budget.
func Unify(a, b types.Type, subst types.Subst) (types.Subst, error) {
	var ctx typeutil.CommonContext
	subst, err := ctx.Unify(a, b, subst)
	if err != nil {
		return subst, unifyError(err, nil)
	}
	return subst, nil
}

// Generalize quantifies t over each of its free type-variables which is not free within env.
func Generalize(t types.Type, env TypeEnv) types.Type {
	return typeutil.Generalize(t, env.FreeTypeVars())
}

// IsExpansive reports whether the type of a let-bound term must not be generalized, under the value
// restriction.
func IsExpansive(t ast.Term) bool { return astutil.IsExpansive(t) }
