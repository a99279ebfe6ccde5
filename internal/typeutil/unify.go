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

package typeutil

import (
	"github.com/wdamron/plambda/types"
)

// UnifyErrorKind classifies unification failures.
type UnifyErrorKind int

const (
	// Two type constructors are incompatible.
	Mismatch UnifyErrorKind = iota
	// A type-variable would be bound to a type which contains it.
	OccursCheck
	// The unification budget was exhausted.
	Timeout
)

// UnifyError is returned when two types cannot be unified.
type UnifyError struct {
	Kind UnifyErrorKind
	Msg  string
}

func (e *UnifyError) Error() string { return e.Msg }

func mismatch(a, b types.Type) *UnifyError {
	return &UnifyError{Mismatch, "Cannot unify " + types.TypeString(a) + " with " + types.TypeString(b)}
}

func occursCheck(name string, t types.Type) *UnifyError {
	return &UnifyError{OccursCheck, "Occurs check failed: " + name + " appears in " + types.TypeString(t)}
}

var errTimeout = &UnifyError{Timeout, "Unification timeout"}

// Unify a and b under subst, returning subst extended with the bindings which make them equal.
//
// subst is applied to both types before they are compared. Each call is bounded by the context's
// unification budget; every visited pair of types consumes one unit of fuel.
func (ctx *CommonContext) Unify(a, b types.Type, subst types.Subst) (types.Subst, error) {
	u := unifier{fuel: ctx.fuel()}
	return u.unify(subst.Apply(a), subst.Apply(b), subst)
}

type unifier struct {
	fuel int
}

func (u *unifier) unify(a, b types.Type, subst types.Subst) (types.Subst, error) {
	if u.fuel <= 0 {
		return subst, errTimeout
	}
	u.fuel--

	if va, ok := a.(*types.Var); ok {
		if vb, ok := b.(*types.Var); ok && va.Name == vb.Name {
			return subst, nil
		}
		return bind(va.Name, b, subst)
	}
	if vb, ok := b.(*types.Var); ok {
		return bind(vb.Name, a, subst)
	}

	switch a := a.(type) {
	case *types.Arrow:
		bArrow, ok := b.(*types.Arrow)
		if !ok {
			break
		}
		subst, err := u.unify(a.Left, bArrow.Left, subst)
		if err != nil {
			return subst, err
		}
		return u.unify(subst.Apply(a.Right), subst.Apply(bArrow.Right), subst)

	case types.Int:
		if _, ok := b.(types.Int); ok {
			return subst, nil
		}

	case types.Unit:
		if _, ok := b.(types.Unit); ok {
			return subst, nil
		}

	case *types.List:
		if bList, ok := b.(*types.List); ok {
			return u.unify(subst.Apply(a.Elem), subst.Apply(bList.Elem), subst)
		}

	case *types.Ref:
		if bRef, ok := b.(*types.Ref); ok {
			return u.unify(subst.Apply(a.Inner), subst.Apply(bRef.Inner), subst)
		}
	}
	return subst, mismatch(a, b)
}

func bind(name string, t types.Type, subst types.Subst) (types.Subst, error) {
	if types.Occurs(name, t) {
		return subst, occursCheck(name, t)
	}
	return subst.Set(name, t), nil
}
