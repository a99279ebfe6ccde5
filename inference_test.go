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
	"testing"

	"github.com/wdamron/plambda/ast"
	. "github.com/wdamron/plambda/construct"
	"github.com/wdamron/plambda/parser"
	"github.com/wdamron/plambda/types"
)

func mustParse(t testing.TB, src string) ast.Term {
	t.Helper()
	term, err := parser.ParseTerm(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return term
}

func TestInferType(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`λx.x`, "(T0 -> T0)"},
		{`\x.\y.x`, "(T0 -> (T1 -> T0))"},
		{`add 1 2`, "Int"},
		{`sub 3 (add 1 2)`, "Int"},
		{`let id = λx.x in id 42`, "Int"},
		{`let id = λx.x in id id`, "(T2 -> T2)"},
		{`head (tail (cons 1 (cons 2 nil)))`, "Int"},
		{`λx.cons x nil`, "(T0 -> [T0])"},
		{`ife nil then 1 else 2`, "Int"},
		{`ifz 0 then λx.x else λy.add y 1`, "(Int -> Int)"},
		{`fix λf.λn.ifz n then 0 else add n (f (sub n 1))`, "(Int -> Int)"},
		{`fix (λf.λn.ifz n then 0 else add n (f (sub n 1))) 5`, "Int"},
		{`()`, "Unit"},
		{`ref nil`, "Ref([T0])"},
		{`λx.!x`, "(Ref(T1) -> T1)"},
		{`:= (ref 1) 2`, "Unit"},
		{`let r = ref 0 in let _ = := r 1 in !r`, "Int"},
		// free variables are assigned fresh types
		{`f 1`, "T1"},
	}

	ctx := NewContext()
	for _, c := range cases {
		term := mustParse(t, c.src)
		typ, err := ctx.Infer(term, NewTypeEnv())
		if err != nil {
			t.Fatalf("%s: %v", c.src, err)
		}
		if got := types.TypeString(typ); got != c.want {
			t.Fatalf("%s: expected %s, found %s", c.src, c.want, got)
		}
	}
}

func TestInferTypeErrors(t *testing.T) {
	cases := []struct {
		src  string
		kind ErrorKind
		msg  string
	}{
		{`add (λx.x) 1`, TypeMismatch, "Cannot unify (T0 -> T0) with Int"},
		{`1 2`, TypeMismatch, "Cannot unify Int with (Int -> T0)"},
		{`head 42`, TypeMismatch, "Cannot unify Int with [T0]"},
		{`λx.x x`, OccursCheck, "Occurs check failed: T0 appears in (T0 -> T1)"},
		{`let r = ref nil in let _ = (:= r (cons (λx.x) nil)) in (add (head (!r)) 2)`, TypeMismatch, ""},
	}

	ctx := NewContext()
	for _, c := range cases {
		term := mustParse(t, c.src)
		_, err := ctx.Infer(term, NewTypeEnv())
		if err == nil {
			t.Fatalf("%s: expected a type error", c.src)
		}
		var typeErr *TypeError
		if !errors.As(err, &typeErr) {
			t.Fatalf("%s: expected *TypeError, found %T", c.src, err)
		}
		if typeErr.Kind != c.kind {
			t.Fatalf("%s: expected %v, found %v (%s)", c.src, c.kind, typeErr.Kind, err)
		}
		if c.msg != "" && err.Error() != c.msg {
			t.Fatalf("%s: expected %q, found %q", c.src, c.msg, err.Error())
		}
		if ctx.Error() != err || ctx.InvalidTerm() == nil || ctx.InvalidTerm() != typeErr.Term {
			t.Fatalf("%s: expected the context to record the failure", c.src)
		}
	}
}

func TestValueRestriction(t *testing.T) {
	// an abstraction is generalized
	poly := `let id = λx.x in let _ = id 1 in id ()`
	if _, err := InferType(mustParse(t, poly), NewTypeEnv()); err != nil {
		t.Fatalf("expected polymorphic let to be typable: %v", err)
	}

	// an allocation is not
	mono := `let r = ref (λx.x) in let _ = (!r) 1 in (!r) ()`
	if _, err := InferType(mustParse(t, mono), NewTypeEnv()); err == nil {
		t.Fatalf("expected reference to remain monomorphic")
	}
}

// InferType binds every free variable, so an unbound variable can only be reached by inferring
// within an environment directly.
func TestUnboundVariable(t *testing.T) {
	ctx := NewContext()
	term := Abs("x", App(Var("x"), Var("y")))
	_, _, err := ctx.infer(NewTypeEnv(), term)
	var typeErr *TypeError
	if !errors.As(err, &typeErr) || typeErr.Kind != UnboundVariable {
		t.Fatalf("expected an unbound variable, found %v", err)
	}
	if err.Error() != "Variable y not found" {
		t.Fatalf("expected %q, found %q", "Variable y not found", err.Error())
	}
	if v, ok := ctx.InvalidTerm().(*ast.Var); !ok || v.Name != "y" {
		t.Fatalf("expected y to be the invalid term, found %v", ctx.InvalidTerm())
	}
}

func TestFreeVariableTypes(t *testing.T) {
	res, err := InferType(mustParse(t, `λx.add x y`), NewTypeEnv())
	if err != nil {
		t.Fatal(err)
	}
	if got := types.TypeString(res.Free.Lookup("y")); got != "Int" {
		t.Fatalf("expected y : Int, found %s", got)
	}

	res, err = InferType(mustParse(t, `λx.y`), NewTypeEnv())
	if err != nil {
		t.Fatal(err)
	}
	if got := types.TypeString(Generalize(res.Type, res.Free)); got != "(∀T1. (T1 -> T0))" {
		t.Fatalf("expected the type of y to stay free, found %s", got)
	}

	// variables bound by the environment are not free
	res, err = InferType(mustParse(t, `λx.y`), NewTypeEnv().Declare("y", TInt))
	if err != nil {
		t.Fatal(err)
	}
	if res.Free.Len() != 0 {
		t.Fatalf("expected no free variables, found %d", res.Free.Len())
	}
}

func TestInferWithEnv(t *testing.T) {
	env := NewTypeEnv().
		Declare("succ", TArrow(TInt, TInt)).
		Declare("id", TForall([]string{"a"}, TArrow(TVar("a"), TVar("a"))))

	term := App(Var("succ"), App(Var("id"), Int(1)))
	res, err := InferType(term, env)
	if err != nil {
		t.Fatal(err)
	}
	if got := types.TypeString(res.Type); got != "Int" {
		t.Fatalf("expected Int, found %s", got)
	}
}

func TestInferTwice(t *testing.T) {
	ctx := NewContext()
	term := AbsN([]string{"x", "y"}, Var("x"))

	// Infer twice to ensure state is properly reset between calls:
	for i := 0; i < 2; i++ {
		typ, err := ctx.Infer(term, NewTypeEnv())
		if err != nil {
			t.Fatal(err)
		}
		if got := types.TypeString(typ); got != "(T0 -> (T1 -> T0))" {
			t.Fatalf("run %d: expected (T0 -> (T1 -> T0)), found %s", i, got)
		}
	}

	if _, err := ctx.Infer(nil, NewTypeEnv()); err == nil || err.Error() != "Empty term" {
		t.Fatalf("expected empty term error, found %v", err)
	}
}

func TestUnificationTimeout(t *testing.T) {
	ctx := NewContext()
	ctx.SetUnifyFuel(1)
	_, err := ctx.Infer(mustParse(t, `(λx.x) 1`), NewTypeEnv())
	var typeErr *TypeError
	if !errors.As(err, &typeErr) || typeErr.Kind != UnificationTimeout {
		t.Fatalf("expected unification timeout, found %v", err)
	}
	if err.Error() != "Unification timeout" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestUnify(t *testing.T) {
	ground := []types.Type{
		TInt, TUnit, TList(TInt), TRef(TList(TUnit)), TArrowN([]types.Type{TInt, TList(TInt)}, TRef(TInt)),
	}
	for _, typ := range ground {
		subst, err := Unify(typ, typ, types.EmptySubst)
		if err != nil {
			t.Fatalf("%s: %v", types.TypeString(typ), err)
		}
		if subst.Len() != 0 {
			t.Fatalf("%s: expected identity substitution", types.TypeString(typ))
		}
	}

	_, err := Unify(TVar("a"), TArrow(TVar("a"), TInt), types.EmptySubst)
	var typeErr *TypeError
	if !errors.As(err, &typeErr) || typeErr.Kind != OccursCheck {
		t.Fatalf("expected occurs check failure, found %v", err)
	}

	subst, err := Unify(TArrow(TVar("a"), TVar("b")), TArrow(TInt, TList(TVar("a"))), types.EmptySubst)
	if err != nil {
		t.Fatal(err)
	}
	if got := types.TypeString(subst.Apply(TVar("b"))); got != "[Int]" {
		t.Fatalf("expected b to resolve to [Int], found %s", got)
	}
}

func TestGeneralize(t *testing.T) {
	typ := TArrow(TVar("T0"), TArrow(TVar("T1"), TVar("T0")))
	if got := types.TypeString(Generalize(typ, NewTypeEnv())); got != "(∀T0. (∀T1. (T0 -> (T1 -> T0))))" {
		t.Fatalf("unexpected generalization %s", got)
	}
	env := NewTypeEnv().Declare("x", TVar("T1"))
	if got := types.TypeString(Generalize(typ, env)); got != "(∀T0. (T0 -> (T1 -> T0)))" {
		t.Fatalf("expected environment variables to remain free, found %s", got)
	}
}

func TestTypeEnv(t *testing.T) {
	var zero TypeEnv
	if zero.Len() != 0 || zero.Lookup("x") != nil {
		t.Fatalf("expected zero environment to be empty")
	}

	base := zero.Declare("x", TVar("a")).Declare("y", TInt)
	extended := base.Merge(NewTypeEnv().Declare("x", TUnit).Declare("z", TVar("b")))
	if base.Lookup("z") != nil {
		t.Fatalf("expected merge to leave the original environment unchanged")
	}
	if !types.Equal(extended.Lookup("x"), TUnit) {
		t.Fatalf("expected merged bindings to take precedence")
	}
	if extended.Len() != 3 || extended.Remove("z").Len() != 2 {
		t.Fatalf("unexpected environment size")
	}

	vars := base.FreeTypeVars()
	if len(vars) != 1 || !vars.Has("a") {
		t.Fatalf("expected free type-variables {a}, found %v", vars)
	}
	applied := ApplySubstToEnv(types.SingletonSubst("a", TInt), base)
	if !types.Equal(applied.Lookup("x"), TInt) || !types.Equal(base.Lookup("x"), TVar("a")) {
		t.Fatalf("unexpected substitution of environment")
	}
}

func TestIsExpansive(t *testing.T) {
	if IsExpansive(Abs("x", Mkref(Var("x")))) {
		t.Fatalf("expected abstraction to be non-expansive")
	}
	if !IsExpansive(Cons(Mkref(Int(0)), Nil())) {
		t.Fatalf("expected allocation within a list to be expansive")
	}
}
