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
	"testing"

	"github.com/wdamron/plambda/types"
)

func TestVarTracker(t *testing.T) {
	var vt VarTracker
	if name := vt.New().Name; name != "T0" {
		t.Fatalf("expected T0, found %s", name)
	}
	vars := vt.NewList(2)
	if vars[0].Name != "T1" || vars[1].Name != "T2" || vt.Count() != 3 {
		t.Fatalf("unexpected allocation: %s, %s", vars[0].Name, vars[1].Name)
	}
	vt.Reset()
	if name := vt.NextName(); name != "T0" {
		t.Fatalf("expected T0 after reset, found %s", name)
	}

	weak := VarTracker{Prefix: "_w"}
	if name := weak.NextName(); name != "_w0" {
		t.Fatalf("expected _w0, found %s", name)
	}
}

func TestInstantiate(t *testing.T) {
	ctx := CommonContext{VarTracker: VarTracker{NextId: 5}}
	scheme := &types.Forall{Var: "a", Body: &types.Forall{Var: "b", Body: &types.Arrow{
		Left:  &types.Var{Name: "a"},
		Right: &types.Arrow{Left: &types.Var{Name: "b"}, Right: &types.Var{Name: "c"}},
	}}}
	got := types.TypeString(ctx.Instantiate(scheme))
	if got != "(T5 -> (T6 -> c))" {
		t.Fatalf("expected (T5 -> (T6 -> c)), found %s", got)
	}

	// a fresh variable sharing the name of a quantified variable is not captured
	ctx = CommonContext{}
	swap := &types.Forall{Var: "T1", Body: &types.Forall{Var: "T0", Body: &types.Arrow{
		Left:  &types.Var{Name: "T1"},
		Right: &types.Var{Name: "T0"},
	}}}
	if got := types.TypeString(ctx.Instantiate(swap)); got != "(T0 -> T1)" {
		t.Fatalf("expected (T0 -> T1), found %s", got)
	}

	if got := ctx.Instantiate(types.Int{}); got != (types.Int{}) {
		t.Fatalf("expected monotype to be unchanged")
	}
}

func TestUnifyFuel(t *testing.T) {
	var deep types.Type = types.Int{}
	for i := 0; i < 20; i++ {
		deep = &types.List{Elem: deep}
	}

	ctx := CommonContext{UnifyFuel: 10}
	_, err := ctx.Unify(deep, deep, types.EmptySubst)
	uerr, ok := err.(*UnifyError)
	if !ok || uerr.Kind != Timeout {
		t.Fatalf("expected timeout, found %v", err)
	}

	ctx.UnifyFuel = 0
	if _, err := ctx.Unify(deep, deep, types.EmptySubst); err != nil {
		t.Fatalf("expected default budget to suffice: %v", err)
	}
}

func TestUnifyUnderSubst(t *testing.T) {
	var ctx CommonContext
	subst := types.SingletonSubst("a", types.Int{})
	_, err := ctx.Unify(&types.Var{Name: "a"}, types.Unit{}, subst)
	uerr, ok := err.(*UnifyError)
	if !ok || uerr.Kind != Mismatch || uerr.Msg != "Cannot unify Int with Unit" {
		t.Fatalf("expected the substitution to be applied before unification, found %v", err)
	}

	subst, err = ctx.Unify(&types.Ref{Inner: &types.Var{Name: "b"}}, &types.Ref{Inner: &types.Var{Name: "a"}}, subst)
	if err != nil {
		t.Fatal(err)
	}
	if got := types.TypeString(subst.Apply(&types.Var{Name: "b"})); got != "Int" {
		t.Fatalf("expected b to resolve to Int, found %s", got)
	}
}

func TestGeneralize(t *testing.T) {
	typ := &types.Arrow{Left: &types.Var{Name: "b"}, Right: &types.Arrow{Left: &types.Var{Name: "a"}, Right: &types.Var{Name: "b"}}}
	got := types.TypeString(Generalize(typ, types.VarSet{}))
	if got != "(∀b. (∀a. (b -> (a -> b))))" {
		t.Fatalf("unexpected generalization %s", got)
	}
	env := types.VarSet{}
	env.Add("b")
	if got := types.TypeString(Generalize(typ, env)); got != "(∀a. (b -> (a -> b)))" {
		t.Fatalf("unexpected generalization %s", got)
	}
}
