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
	"testing"

	"github.com/wdamron/plambda/ast"
	. "github.com/wdamron/plambda/construct"
	"github.com/wdamron/plambda/parser"
)

func mustParse(t testing.TB, src string) ast.Term {
	t.Helper()
	term, err := parser.ParseTerm(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return term
}

func TestEvalToNormalForm(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`add 1 2`, "3"},
		{`sub 1 3`, "-2"},
		{`(λx.x) 42`, "42"},
		{`(λx.λy.x) 1 2`, "1"},
		{`let x = add 1 1 in add x x`, "4"},
		{`head (tail (cons 1 (cons 2 nil)))`, "2"},
		{`cons (add 1 1) nil`, "(cons 2 nil)"},
		{`ifz sub 1 1 then 10 else 20`, "10"},
		{`ife cons 1 nil then 10 else 20`, "20"},
		{`fix (λf.λn.ifz n then 0 else add n (f (sub n 1))) 5`, "15"},
		{`let len = fix λlen.λl.ife l then 0 else add 1 (len (tail l)) in len (cons 1 (cons 2 (cons 3 nil)))`, "3"},
		{`let r = ref 0 in let _ = := r 1 in !r`, "1"},
		{`let r = ref 1 in let _ = := r (add !r 1) in !r`, "2"},
		// abstraction bodies are not reduced
		{`λx.add 1 2`, "(fun _v0 -> (1 + 2))"},
		// free variables are values
		{`(λx.x) y`, "y"},
		{`()`, "()"},
	}
	for _, c := range cases {
		res := EvalToNormalForm(mustParse(t, c.src), NewStore(), 0)
		if res.Status != NormalForm {
			t.Fatalf("%s: expected normal form, found %s at %s", c.src, res.Status, ast.TermString(res.Term))
		}
		if got := ast.TermString(res.Term); got != c.want {
			t.Fatalf("%s: expected %s, found %s", c.src, c.want, got)
		}
	}
}

func TestStuck(t *testing.T) {
	for _, src := range []string{`head 1`, `1 2`, `add nil 1`, `!5`, `tail nil`} {
		res := EvalToNormalForm(mustParse(t, src), NewStore(), 0)
		if res.Status != Stuck {
			t.Fatalf("%s: expected stuck, found %s", src, res.Status)
		}
	}

	// a sub-term may be reduced before the term gets stuck
	res := EvalToNormalForm(mustParse(t, `head (add 1 2)`), NewStore(), 0)
	if res.Status != Stuck || ast.TermString(res.Term) != "(head 3)" || res.Steps != 1 {
		t.Fatalf("expected (head 3) stuck after 1 step, found %s (%s, %d steps)", ast.TermString(res.Term), res.Status, res.Steps)
	}
}

func TestOutOfFuel(t *testing.T) {
	// omega reduces to itself
	omega := mustParse(t, `(λx.x x) (λx.x x)`)
	res := EvalToNormalForm(omega, NewStore(), 0)
	if res.Status != Stuck {
		t.Fatalf("expected a step which leaves the term unchanged to be stuck, found %s", res.Status)
	}

	loop := mustParse(t, `fix (λf.λn.f (add n 1)) 0`)
	res = EvalToNormalForm(loop, NewStore(), 50)
	if res.Status != OutOfFuel || res.Steps != 50 {
		t.Fatalf("expected out of fuel after 50 steps, found %s after %d", res.Status, res.Steps)
	}

	sum := mustParse(t, `fix (λf.λn.ifz n then 0 else add n (f (sub n 1))) 5`)
	full := EvalToNormalForm(sum, NewStore(), 0)
	exact := EvalToNormalForm(sum, NewStore(), full.Steps)
	if exact.Status != NormalForm || ast.TermString(exact.Term) != "15" {
		t.Fatalf("expected a bound equal to the step count to reach normal form, found %s", exact.Status)
	}
	short := EvalToNormalForm(sum, NewStore(), full.Steps-1)
	if short.Status != OutOfFuel {
		t.Fatalf("expected a shorter bound to run out of fuel, found %s", short.Status)
	}
}

func TestDeterminism(t *testing.T) {
	term := mustParse(t, `let r = ref (λx.x) in let _ = := r (λy.add y 1) in (!r) 41`)
	first := EvalToNormalForm(term, NewStore(), 0)
	for i := 0; i < 3; i++ {
		next := NewMachine().EvalToNormalForm(term, NewStore(), 0)
		if !ast.Equal(first.Term, next.Term) || first.Steps != next.Steps || first.Store.Len() != next.Store.Len() {
			t.Fatalf("run %d: expected identical results", i)
		}
	}
	if ast.TermString(first.Term) != "42" {
		t.Fatalf("expected 42, found %s", ast.TermString(first.Term))
	}
}

func TestAlphaInvariance(t *testing.T) {
	a := mustParse(t, `(λx.λy.cons x (cons y nil)) 1`)
	b := mustParse(t, `(λp.λq.cons p (cons q nil)) 1`)
	ra := EvalToNormalForm(a, NewStore(), 0)
	rb := EvalToNormalForm(b, NewStore(), 0)
	if !ast.AlphaEqual(ra.Term, rb.Term) {
		t.Fatalf("expected alpha-equal results, found %s and %s", ast.TermString(ra.Term), ast.TermString(rb.Term))
	}
}

func TestNoCapture(t *testing.T) {
	// the free y must not be captured by the inner binder
	term := mustParse(t, `(λx.λy.x) y`)
	res := EvalToNormalForm(term, NewStore(), 0)
	if got := ast.TermString(res.Term); got != "(fun _v1 -> y)" {
		t.Fatalf("expected (fun _v1 -> y), found %s", got)
	}
}

func TestStore(t *testing.T) {
	var zero Store
	if zero.Len() != 0 || zero.NextRegion() != 0 {
		t.Fatalf("expected zero store to be empty")
	}
	r0, s1 := zero.Alloc(Int(1))
	r1, s2 := s1.Alloc(Int(2))
	if r0.Id != 0 || r1.Id != 1 || s2.NextRegion() != 2 {
		t.Fatalf("unexpected region ids %d, %d", r0.Id, r1.Id)
	}
	s3 := s2.Set(r0.Id, Int(3))
	if v, _ := s2.Get(0); ast.TermString(v) != "1" {
		t.Fatalf("expected update to leave the original store unchanged")
	}
	if v, _ := s3.Get(0); ast.TermString(v) != "3" {
		t.Fatalf("expected updated contents")
	}
	if _, ok := s3.Get(7); ok {
		t.Fatalf("expected missing region")
	}

	var ids []int
	s3.Range(func(id int, _ ast.Term) bool {
		ids = append(ids, id)
		return true
	})
	if len(ids) != 2 || ids[0] != 0 || ids[1] != 1 {
		t.Fatalf("expected regions in id order, found %v", ids)
	}
}

func TestStoreThreading(t *testing.T) {
	store := NewStore()
	res := EvalToNormalForm(mustParse(t, `ref 1`), store, 0)
	if got := ast.TermString(res.Term); got != "ρ0" || res.Store.Len() != 1 {
		t.Fatalf("expected ρ0 in a store of 1 region, found %s", got)
	}
	if store.Len() != 0 {
		t.Fatalf("expected the initial store to be unchanged")
	}

	// regions from an earlier run remain valid
	next := EvalToNormalForm(AppN(Abs("r", Assign(Var("r"), Int(5))), Region(0)), res.Store, 0)
	if v, _ := next.Store.Get(0); ast.TermString(v) != "5" || ast.TermString(next.Term) != "()" {
		t.Fatalf("expected region 0 to contain 5, found %s", ast.TermString(v))
	}
	again := EvalToNormalForm(Mkref(Nil()), next.Store, 0)
	if got := ast.TermString(again.Term); got != "ρ1" {
		t.Fatalf("expected a fresh region, found %s", got)
	}
}

func TestStep(t *testing.T) {
	m := NewMachine()
	var steps []string
	m.OnStep = func(_ int, term ast.Term, _ Store) {
		steps = append(steps, ast.TermString(term))
	}
	res := m.EvalToNormalForm(mustParse(t, `add (add 1 2) (sub 5 1)`), NewStore(), 0)
	want := []string{"(3 + (5 - 1))", "(3 + 4)", "7"}
	if res.Steps != len(want) || len(steps) != len(want) {
		t.Fatalf("expected %d steps, found %d", len(want), res.Steps)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("step %d: expected %s, found %s", i+1, want[i], steps[i])
		}
	}

	if _, _, ok := m.Step(Int(1), NewStore()); ok {
		t.Fatalf("expected no step for a value")
	}
}

func TestStatusString(t *testing.T) {
	for status, want := range map[Status]string{NormalForm: "normal form", Stuck: "stuck", OutOfFuel: "out of fuel"} {
		if status.String() != want {
			t.Fatalf("expected %s, found %s", want, status.String())
		}
	}
}
