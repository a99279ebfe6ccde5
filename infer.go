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
	"github.com/wdamron/plambda/ast"
	"github.com/wdamron/plambda/internal/astutil"
	"github.com/wdamron/plambda/internal/typeutil"
	"github.com/wdamron/plambda/types"
)

// Infer the type of t within env. The returned substitution has been applied to the returned type.
func (ti *InferenceContext) infer(env TypeEnv, t ast.Term) (types.Type, types.Subst, error) {
	switch t := t.(type) {
	case *ast.Var:
		scheme := env.Lookup(t.Name)
		if scheme == nil {
			err := unboundVariable(t)
			ti.invalid, ti.err = t, err
			return nil, types.EmptySubst, err
		}
		return ti.common.Instantiate(scheme), types.EmptySubst, nil

	case *ast.Int:
		return types.Int{}, types.EmptySubst, nil

	case *ast.Nil:
		return &types.List{Elem: ti.common.VarTracker.New()}, types.EmptySubst, nil

	case *ast.Unit:
		return types.Unit{}, types.EmptySubst, nil

	case *ast.Region:
		return &types.Ref{Inner: ti.common.VarTracker.New()}, types.EmptySubst, nil

	case *ast.Abs:
		argType := ti.common.VarTracker.New()
		bodyType, subst, err := ti.infer(env.Declare(t.Name, argType), t.Body)
		if err != nil {
			return nil, subst, err
		}
		return &types.Arrow{Left: subst.Apply(argType), Right: bodyType}, subst, nil

	case *ast.App:
		funcType, s1, err := ti.infer(env, t.Left)
		if err != nil {
			return nil, s1, err
		}
		argType, s2, err := ti.infer(env.Apply(s1), t.Right)
		if err != nil {
			return nil, s2, err
		}
		ret := ti.common.VarTracker.New()
		subst, err := ti.unify(t, s2.Apply(funcType), &types.Arrow{Left: argType, Right: ret}, s1.Compose(s2))
		if err != nil {
			return nil, subst, err
		}
		return subst.Apply(ret), subst, nil

	case *ast.Let:
		valueType, s1, err := ti.infer(env, t.Value)
		if err != nil {
			return nil, s1, err
		}
		env = env.Apply(s1)
		scheme := s1.Apply(valueType)
		if !astutil.IsExpansive(t.Value) {
			scheme = typeutil.Generalize(scheme, env.FreeTypeVars())
		}
		bodyType, s2, err := ti.infer(env.Declare(t.Name, scheme), t.Body)
		if err != nil {
			return nil, s2, err
		}
		return bodyType, s1.Compose(s2), nil

	case *ast.Add:
		return ti.inferArith(env, t, t.Left, t.Right)

	case *ast.Sub:
		return ti.inferArith(env, t, t.Left, t.Right)

	case *ast.Cons:
		headType, s1, err := ti.infer(env, t.Head)
		if err != nil {
			return nil, s1, err
		}
		tailType, s2, err := ti.infer(env.Apply(s1), t.Tail)
		if err != nil {
			return nil, s2, err
		}
		listType := &types.List{Elem: s2.Apply(headType)}
		subst, err := ti.unify(t, tailType, listType, s1.Compose(s2))
		if err != nil {
			return nil, subst, err
		}
		return subst.Apply(listType), subst, nil

	case *ast.Head:
		elem, subst, err := ti.inferList(env, t, t.List)
		if err != nil {
			return nil, subst, err
		}
		return subst.Apply(elem), subst, nil

	case *ast.Tail:
		elem, subst, err := ti.inferList(env, t, t.List)
		if err != nil {
			return nil, subst, err
		}
		return subst.Apply(&types.List{Elem: elem}), subst, nil

	case *ast.Izte:
		condType, subst, err := ti.infer(env, t.Cond)
		if err != nil {
			return nil, subst, err
		}
		if subst, err = ti.unify(t, condType, types.Int{}, subst); err != nil {
			return nil, subst, err
		}
		return ti.inferBranches(env, t, t.Then, t.Else, subst)

	case *ast.Iete:
		condType, subst, err := ti.infer(env, t.Cond)
		if err != nil {
			return nil, subst, err
		}
		if subst, err = ti.unify(t, condType, &types.List{Elem: ti.common.VarTracker.New()}, subst); err != nil {
			return nil, subst, err
		}
		return ti.inferBranches(env, t, t.Then, t.Else, subst)

	case *ast.Fix:
		funcType, subst, err := ti.infer(env, t.Func)
		if err != nil {
			return nil, subst, err
		}
		fixed := ti.common.VarTracker.New()
		if subst, err = ti.unify(t, funcType, &types.Arrow{Left: fixed, Right: fixed}, subst); err != nil {
			return nil, subst, err
		}
		return subst.Apply(fixed), subst, nil

	case *ast.Mkref:
		inner, subst, err := ti.infer(env, t.Expr)
		if err != nil {
			return nil, subst, err
		}
		return &types.Ref{Inner: inner}, subst, nil

	case *ast.Deref:
		refType, subst, err := ti.infer(env, t.Expr)
		if err != nil {
			return nil, subst, err
		}
		inner := ti.common.VarTracker.New()
		if subst, err = ti.unify(t, refType, &types.Ref{Inner: inner}, subst); err != nil {
			return nil, subst, err
		}
		return subst.Apply(inner), subst, nil

	case *ast.Assign:
		refType, s1, err := ti.infer(env, t.Ref)
		if err != nil {
			return nil, s1, err
		}
		valueType, s2, err := ti.infer(env.Apply(s1), t.Value)
		if err != nil {
			return nil, s2, err
		}
		subst, err := ti.unify(t, s2.Apply(refType), &types.Ref{Inner: valueType}, s1.Compose(s2))
		if err != nil {
			return nil, subst, err
		}
		return types.Unit{}, subst, nil
	}
	panic("unexpected term " + t.TermName())
}

// Unify a and b, recording t as the invalid sub-term on failure.
func (ti *InferenceContext) unify(t ast.Term, a, b types.Type, subst types.Subst) (types.Subst, error) {
	subst, err := ti.common.Unify(a, b, subst)
	if err != nil {
		err = unifyError(err, t)
		ti.invalid, ti.err = t, err
	}
	return subst, err
}

func (ti *InferenceContext) inferArith(env TypeEnv, t, left, right ast.Term) (types.Type, types.Subst, error) {
	leftType, s1, err := ti.infer(env, left)
	if err != nil {
		return nil, s1, err
	}
	rightType, s2, err := ti.infer(env.Apply(s1), right)
	if err != nil {
		return nil, s2, err
	}
	subst, err := ti.unify(t, leftType, types.Int{}, s1.Compose(s2))
	if err != nil {
		return nil, subst, err
	}
	if subst, err = ti.unify(t, rightType, types.Int{}, subst); err != nil {
		return nil, subst, err
	}
	return types.Int{}, subst, nil
}

// Infer the type of a list operand, returning its (unapplied) element type.
func (ti *InferenceContext) inferList(env TypeEnv, t, list ast.Term) (types.Type, types.Subst, error) {
	listType, subst, err := ti.infer(env, list)
	if err != nil {
		return nil, subst, err
	}
	elem := ti.common.VarTracker.New()
	if subst, err = ti.unify(t, listType, &types.List{Elem: elem}, subst); err != nil {
		return nil, subst, err
	}
	return elem, subst, nil
}

// Infer the types of both branches of a conditional under subst, and unify them.
func (ti *InferenceContext) inferBranches(env TypeEnv, t, then, els ast.Term, subst types.Subst) (types.Type, types.Subst, error) {
	thenType, s2, err := ti.infer(env.Apply(subst), then)
	if err != nil {
		return nil, s2, err
	}
	subst = subst.Compose(s2)
	elseType, s3, err := ti.infer(env.Apply(subst), els)
	if err != nil {
		return nil, s3, err
	}
	subst = subst.Compose(s3)
	if subst, err = ti.unify(t, thenType, elseType, subst); err != nil {
		return nil, subst, err
	}
	return subst.Apply(thenType), subst, nil
}
